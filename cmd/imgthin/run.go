package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/imgthin/internal/imaging"
	"github.com/ironsheep/imgthin/internal/pipeline"
	"github.com/ironsheep/imgthin/internal/thinning"
)

// fileResult summarizes one processed input.
type fileResult struct {
	Input   string
	Thinned string
	Overlay string
	Stats   thinning.Stats
	Ends    int
	Joins   int
}

// outputPaths returns where the results for input are written.
func outputPaths(cfg *Config, input string) (thinned, overlay string) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"_thinned.png"), filepath.Join(dir, base+"_overlay.png")
}

// run processes every input concurrently, at most cfg.Workers at a time, and
// prints one summary line per input to w in input order. The first failure
// cancels the inputs that have not started yet.
func run(ctx context.Context, cfg *Config, w io.Writer) error {
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	cache := imaging.NewImageCache()
	results := make([]fileResult, len(cfg.Inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, input := range cfg.Inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := processFile(cache, cfg, input)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintf(w, "%s: %d passes, %d removed, %d remaining, %d endpoints, %d junctions -> %s\n",
			r.Input, r.Stats.Passes, r.Stats.Removed, r.Stats.Remaining, r.Ends, r.Joins, r.Thinned)
		if r.Overlay != "" {
			fmt.Fprintf(w, "%s: overlay -> %s\n", r.Input, r.Overlay)
		}
	}
	return nil
}

// processFile thins one input and writes its result images.
func processFile(cache *imaging.ImageCache, cfg *Config, input string) (*fileResult, error) {
	img, err := cache.Load(input)
	if err != nil {
		return nil, err
	}
	// Each input is processed once.
	defer cache.Evict(input)

	opts := cfg.pipelineOptions()
	if cfg.Debug {
		opts.Observe = func(p thinning.PassInfo) {
			log.Printf("%s: pass %d removed %d pixels", input, p.Pass, p.Removed)
		}
	}

	res, err := pipeline.Run(img, opts)
	if err != nil {
		return nil, err
	}

	thinnedPath, overlayPath := outputPaths(cfg, input)
	if err := writeResult(cfg, res.Render(), thinnedPath); err != nil {
		return nil, err
	}
	if cfg.Overlay {
		if err := writeResult(cfg, res.RenderOverlay(imaging.OverlayColor), overlayPath); err != nil {
			return nil, err
		}
	} else {
		overlayPath = ""
	}

	if cfg.Debug {
		log.Printf("%s: %d components", input, len(res.Features.Components))
	}
	return &fileResult{
		Input:   input,
		Thinned: thinnedPath,
		Overlay: overlayPath,
		Stats:   res.Stats,
		Ends:    len(res.Features.Endpoints),
		Joins:   len(res.Features.Junctions),
	}, nil
}

// writeResult magnifies img, draws the optional grid and saves it.
func writeResult(cfg *Config, img *image.NRGBA, path string) error {
	if err := imaging.CheckMagnify(img.Bounds().Size(), cfg.Magnify); err != nil {
		return err
	}
	out := imaging.Magnify(img, cfg.Magnify)
	if cfg.Grid > 0 {
		if err := imaging.DrawGrid(out, cfg.Grid*cfg.Magnify, cfg.Magnify, true, nil); err != nil {
			return err
		}
	}
	return imaging.Save(out, path)
}
