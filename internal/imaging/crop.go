package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is a rectangle in image coordinates; (X1,Y1) is inclusive and
// (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts r to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Crop extracts region from img. The result's bounds start at (0,0).
func Crop(img image.Image, region Region) (image.Image, error) {
	bounds := img.Bounds()
	if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y || region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	return imaging.Crop(img, region.Rect()), nil
}

// NamedRegion resolves a named part of bounds: top-left, top-right,
// bottom-left, bottom-right, top-half, bottom-half, left-half, right-half or
// center (the middle 50%).
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var r Region
	switch name {
	case "top-left":
		r = Region{0, 0, midX, midY}
	case "top-right":
		r = Region{midX, 0, w, midY}
	case "bottom-left":
		r = Region{0, midY, midX, h}
	case "bottom-right":
		r = Region{midX, midY, w, h}
	case "top-half":
		r = Region{0, 0, w, midY}
	case "bottom-half":
		r = Region{0, midY, w, h}
	case "left-half":
		r = Region{0, 0, midX, h}
	case "right-half":
		r = Region{midX, 0, w, h}
	case "center":
		qW, qH := w/4, h/4
		r = Region{qW, qH, w - qW, h - qH}
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}

	r.X1 += bounds.Min.X
	r.X2 += bounds.Min.X
	r.Y1 += bounds.Min.Y
	r.Y2 += bounds.Min.Y
	return r, nil
}

// Scale resizes img by factor using nearest-neighbor sampling, which keeps
// edges hard so upscaled line art still binarizes cleanly. A factor of 1 or
// less than or equal to 0 returns img unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1.0 || factor <= 0 {
		return img
	}
	w := int(float64(img.Bounds().Dx()) * factor)
	h := int(float64(img.Bounds().Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}
