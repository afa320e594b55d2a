package thinning

import (
	"fmt"
	"strings"
)

// Engine thins a binary image until it stops changing.
//
// Thin never modifies img; it returns a new image of the same size together
// with statistics about the run.
type Engine interface {
	Thin(img *BinaryImage) (*BinaryImage, Stats)
}

// Stats describes one thinning run.
type Stats struct {
	// Passes is the number of passes over the image, including the final
	// pass that removed nothing.
	Passes int `json:"passes"`

	// Removed is the total number of ink pixels deleted.
	Removed int `json:"removed"`

	// Remaining is the number of ink pixels in the result.
	Remaining int `json:"remaining"`
}

// PassInfo is reported to an Observer after every pass.
type PassInfo struct {
	Pass    int
	Removed int
	Image   *BinaryImage
}

// Observer is called after each pass with the image as it stands.
// The image must be treated as read-only.
type Observer func(PassInfo)

// Variant names a thinning engine.
type Variant string

const (
	// VariantStandard selects StandardEngine.
	VariantStandard Variant = "standard"
	// VariantTable selects TableEngine.
	VariantTable Variant = "table"
)

// Variants lists every supported variant, default first.
var Variants = []Variant{VariantStandard, VariantTable}

// ParseVariant converts a case-insensitive name into a Variant.
// An empty name selects VariantStandard.
func ParseVariant(name string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case "", VariantStandard:
		return VariantStandard, nil
	case VariantTable:
		return VariantTable, nil
	default:
		return "", fmt.Errorf("unknown thinning variant %q (want standard or table)", name)
	}
}

// NewEngine returns the engine for v, reporting each pass to observe when it
// is non-nil.
func NewEngine(v Variant, observe Observer) (Engine, error) {
	switch v {
	case VariantStandard, "":
		return &StandardEngine{Observe: observe}, nil
	case VariantTable:
		return &TableEngine{Observe: observe}, nil
	default:
		return nil, fmt.Errorf("unknown thinning variant %q", string(v))
	}
}

// Thin validates grid, thins it with StandardEngine and returns the skeleton
// as a new grid of the same size.
func Thin(grid [][]bool) ([][]bool, error) {
	out, _, err := ThinWith(&StandardEngine{}, grid)
	return out, err
}

// ThinWith validates grid and thins it with e.
// Construction errors are returned unchanged and no partial result is
// produced.
func ThinWith(e Engine, grid [][]bool) ([][]bool, Stats, error) {
	img, err := New(grid)
	if err != nil {
		return nil, Stats{}, err
	}
	out, stats := e.Thin(img)
	return out.Grid(), stats, nil
}
