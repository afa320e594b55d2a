package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Default colors for rendered grids and overlays.
var (
	InkColor     color.Color = color.NRGBA{0, 0, 0, 255}
	PaperColor   color.Color = color.NRGBA{255, 255, 255, 255}
	OverlayColor color.Color = color.NRGBA{255, 0, 0, 255}
)

// EncodedImage contains an image encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderGrid draws grid as an image: ink pixels in ink, the rest in paper.
func RenderGrid(grid [][]bool, ink, paper color.Color) *image.NRGBA {
	width := 0
	if len(grid) > 0 {
		width = len(grid[0])
	}
	out := imaging.New(width, len(grid), paper)
	for y, row := range grid {
		for x, v := range row {
			if v {
				out.Set(x, y, ink)
			}
		}
	}
	return out
}

// Overlay draws the ink pixels of grid over a copy of base, typically a
// skeleton over the image it was computed from. Grid cell (0,0) maps to the
// top-left corner of base; cells outside base are skipped.
func Overlay(base image.Image, grid [][]bool, c color.Color) *image.NRGBA {
	out := imaging.Clone(base)
	bounds := out.Bounds()
	for y, row := range grid {
		for x, v := range row {
			px, py := bounds.Min.X+x, bounds.Min.Y+y
			if v && px < bounds.Max.X && py < bounds.Max.Y {
				out.Set(px, py, c)
			}
		}
	}
	return out
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA".
func ParseColor(hex string) (color.Color, error) {
	if hex == "" {
		return nil, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	alpha := uint8(255)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path, choosing the format from the file extension
// (png, jpg, gif, bmp, tif).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Limits on magnified output images.
const (
	MaxMagnify      = 32
	MaxGridSpacing  = 4096
	MaxOutputPixels = 64 << 20
)

// CheckMagnify reports an error when factor is outside 1..MaxMagnify or an
// image of the given size would grow beyond MaxOutputPixels.
func CheckMagnify(size image.Point, factor int) error {
	if factor < 1 || factor > MaxMagnify {
		return fmt.Errorf("magnify must be between 1 and %d, got %d", MaxMagnify, factor)
	}
	if int64(size.X)*int64(size.Y)*int64(factor)*int64(factor) > MaxOutputPixels {
		return fmt.Errorf("magnifying a %dx%d image by %d exceeds %d pixels", size.X, size.Y, factor, MaxOutputPixels)
	}
	return nil
}

// Magnify enlarges img by an integer factor with nearest-neighbor sampling,
// so every source pixel becomes a factor x factor block. A factor below 2
// returns an unscaled copy.
func Magnify(img image.Image, factor int) *image.NRGBA {
	if factor < 2 {
		return imaging.Clone(img)
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}
