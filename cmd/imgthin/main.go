package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/ironsheep/imgthin/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("imgthin %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage(os.Stdout)
			return
		case "serve":
			serve()
			return
		}
	}

	// Configure logging to stderr (stdout carries the summaries)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(os.Stdout)
			return
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n\n", err)
		usage(os.Stderr)
		os.Exit(2)
	}
	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Debug {
		log.Printf("imgthin v%s (built %s, commit %s): %d inputs, variant %s, %d workers",
			Version, BuildTime, GitCommit, len(cfg.Inputs), cfg.Variant, cfg.Workers)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Printf("Application error: %v", err)
		stop()
		os.Exit(1)
	}
}

// serve runs the MCP server on stdin/stdout.
func serve() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("IMGTHIN_LOG_LEVEL") == "debug"
	for _, arg := range os.Args[2:] {
		if arg == "--debug" {
			debug = true
		}
	}
	if debug {
		log.Printf("imgthin MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(server.Config{Version: Version, Debug: debug})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
