package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ironsheep/imgthin/internal/imaging"
	"github.com/ironsheep/imgthin/internal/pipeline"
	"github.com/ironsheep/imgthin/internal/thinning"
)

// Config holds the settings of a file-mode run.
type Config struct {
	Inputs    []string
	OutputDir string
	Variant   string
	Method    string
	Level     int
	Invert    bool
	Overlay   bool
	Magnify   int
	Grid      int
	Workers   int
	Debug     bool
}

// newFlagSet binds the command line flags to cfg.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("imgthin", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&cfg.OutputDir, "output", "o", "", "Directory for result images (default: next to each input).")
	fs.StringVarP(&cfg.Variant, "variant", "v", string(thinning.VariantStandard), "Thinning engine: standard or table.")
	fs.StringVarP(&cfg.Method, "method", "m", string(imaging.MethodRGB), "Ink test: rgb, luma or lightness.")
	fs.IntVarP(&cfg.Level, "level", "l", imaging.DefaultLevel, "Binarization threshold, 1-255.")
	fs.BoolVar(&cfg.Invert, "invert", false, "Treat light pixels as ink (light-on-dark images).")
	fs.BoolVar(&cfg.Overlay, "overlay", false, "Also write <name>_overlay.png with the skeleton drawn over the input.")
	fs.IntVar(&cfg.Magnify, "magnify", 1, "Enlarge result images by this integer factor.")
	fs.IntVar(&cfg.Grid, "grid", 0, "Draw a labeled coordinate grid every N source pixels (0 = none).")
	fs.IntVarP(&cfg.Workers, "workers", "w", runtime.NumCPU(), "Number of images processed concurrently.")
	fs.BoolVar(&cfg.Debug, "debug", false, "Log every thinning pass (same as IMGTHIN_LOG_LEVEL=debug).")
	return fs
}

// parseFlags parses args (without the program name) into a Config.
func parseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Inputs = fs.Args()
	if os.Getenv("IMGTHIN_LOG_LEVEL") == "debug" {
		cfg.Debug = true
	}
	return cfg, nil
}

// validateConfig checks if the provided configuration is valid.
func validateConfig(cfg *Config) error {
	if len(cfg.Inputs) == 0 {
		return errors.New("at least one input image is required")
	}
	for _, in := range cfg.Inputs {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("input file does not exist: %s", in)
		}
	}
	if _, err := thinning.ParseVariant(cfg.Variant); err != nil {
		return err
	}
	if _, err := imaging.ParseMethod(cfg.Method); err != nil {
		return err
	}
	if cfg.Level < 1 || cfg.Level > 255 {
		return fmt.Errorf("--level must be between 1 and 255, got %d", cfg.Level)
	}
	if cfg.Magnify < 1 || cfg.Magnify > imaging.MaxMagnify {
		return fmt.Errorf("--magnify must be between 1 and %d, got %d", imaging.MaxMagnify, cfg.Magnify)
	}
	if cfg.Grid < 0 || cfg.Grid > imaging.MaxGridSpacing {
		return fmt.Errorf("--grid must be between 0 and %d, got %d", imaging.MaxGridSpacing, cfg.Grid)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be a positive integer")
	}
	if cfg.OutputDir != "" {
		if info, err := os.Stat(cfg.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("--output is not a directory: %s", cfg.OutputDir)
		}
	}

	// Inputs sharing a base name would write the same result files.
	written := make(map[string]string, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		thinned, _ := outputPaths(cfg, in)
		if prev, ok := written[thinned]; ok {
			return fmt.Errorf("%s and %s would both write %s", prev, in, thinned)
		}
		written[thinned] = in
	}
	return nil
}

// pipelineOptions converts a validated Config into pipeline options.
func (cfg *Config) pipelineOptions() pipeline.Options {
	variant, _ := thinning.ParseVariant(cfg.Variant)
	method, _ := imaging.ParseMethod(cfg.Method)
	return pipeline.Options{
		Variant: variant,
		Binarize: imaging.Options{
			Method: method,
			Level:  uint8(cfg.Level),
			Invert: cfg.Invert,
		},
	}
}

// usage writes the help text for file mode.
func usage(w io.Writer) {
	fmt.Fprintln(w, "imgthin - thin binary images to one-pixel-wide skeletons")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  imgthin [options] <image>...   Thin each image, writing <name>_thinned.png")
	fmt.Fprintln(w, "  imgthin serve                  Run the MCP server on stdin/stdout")
	fmt.Fprintln(w, "  imgthin --version              Print version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, strings.TrimRight(newFlagSet(&Config{}).FlagUsages(), "\n"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  IMGTHIN_LOG_LEVEL=debug    Enable debug logging")
}
