// Package pipeline chains the steps that turn a raster image into a
// skeleton: crop and scale, binarize, thin and analyze. The command line
// tool and the MCP server both run images through it.
package pipeline

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/imgthin/internal/imaging"
	"github.com/ironsheep/imgthin/internal/skeleton"
	"github.com/ironsheep/imgthin/internal/thinning"
)

// Options configures Run.
type Options struct {
	// Variant selects the thinning engine. Empty selects the standard engine.
	Variant thinning.Variant

	// Binarize controls which pixels count as ink.
	Binarize imaging.Options

	// Region, when set, restricts processing to part of the image.
	Region *imaging.Region

	// Scale resizes the (cropped) image before binarization. Zero or 1
	// leaves it unchanged.
	Scale float64

	// Observe is passed to the engine and called after every pass.
	Observe thinning.Observer
}

// Result is the outcome of one run.
type Result struct {
	// Source is the image that was binarized, after crop and scale.
	// It is nil for ThinGrid results.
	Source image.Image `json:"-"`

	// Ink is the binarized input grid.
	Ink [][]bool `json:"-"`

	// Skeleton is the thinned grid, the same size as Ink.
	Skeleton [][]bool `json:"-"`

	Variant  thinning.Variant  `json:"variant"`
	Stats    thinning.Stats    `json:"stats"`
	Features skeleton.Features `json:"features"`
}

// Run crops, scales and binarizes img according to opts, then thins the ink
// grid and analyzes the skeleton.
func Run(img image.Image, opts Options) (*Result, error) {
	src := img
	if opts.Region != nil {
		cropped, err := imaging.Crop(src, *opts.Region)
		if err != nil {
			return nil, err
		}
		src = cropped
	}
	src = imaging.Scale(src, opts.Scale)

	ink, err := imaging.Binarize(src, opts.Binarize)
	if err != nil {
		return nil, err
	}

	res, err := ThinGrid(ink, opts.Variant, opts.Observe)
	if err != nil {
		return nil, err
	}
	res.Source = src
	return res, nil
}

// ThinGrid thins an already binarized grid with the given variant.
func ThinGrid(grid [][]bool, variant thinning.Variant, observe thinning.Observer) (*Result, error) {
	engine, err := thinning.NewEngine(variant, observe)
	if err != nil {
		return nil, err
	}

	img, err := thinning.New(grid)
	if err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	thinned, stats := engine.Thin(img)

	if variant == "" {
		variant = thinning.VariantStandard
	}
	return &Result{
		Ink:      img.Grid(),
		Skeleton: thinned.Grid(),
		Variant:  variant,
		Stats:    stats,
		Features: skeleton.Analyze(thinned),
	}, nil
}

// Render draws the skeleton in ink on paper.
func (r *Result) Render() *image.NRGBA {
	return imaging.RenderGrid(r.Skeleton, imaging.InkColor, imaging.PaperColor)
}

// RenderOverlay draws the skeleton in c over the source image, or over the
// rendered ink grid when there is no source image.
func (r *Result) RenderOverlay(c color.Color) *image.NRGBA {
	base := r.Source
	if base == nil {
		base = imaging.RenderGrid(r.Ink, imaging.InkColor, imaging.PaperColor)
	}
	return imaging.Overlay(base, r.Skeleton, c)
}
