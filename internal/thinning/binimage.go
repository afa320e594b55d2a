package thinning

import (
	"fmt"
	"iter"
	"strings"
)

// Pixel is one cell of a BinaryImage as produced by BinaryImage.All.
type Pixel struct {
	X, Y  int
	Value bool
}

// BinaryImage is a rectangular grid of ink (true) and paper (false) pixels.
//
// The zero value is an empty 0x0 image. A BinaryImage never changes size
// after construction.
type BinaryImage struct {
	pix   [][]bool
	width int
}

// New validates grid and returns an image holding a copy of it.
//
// Returns an error wrapping ErrInvalidInput if the rows differ in length.
// An empty grid yields a 0x0 image.
func New(grid [][]bool) (*BinaryImage, error) {
	width := 0
	for y, row := range grid {
		if y == 0 {
			width = len(row)
			continue
		}
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", y, len(row), width, ErrInvalidInput)
		}
	}

	pix := make([][]bool, len(grid))
	for y, row := range grid {
		pix[y] = append(make([]bool, 0, width), row...)
	}
	return &BinaryImage{pix: pix, width: width}, nil
}

// NewBlank returns a width x height image with every pixel set to paper.
func NewBlank(width, height int) *BinaryImage {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pix := make([][]bool, height)
	for y := range pix {
		pix[y] = make([]bool, width)
	}
	return &BinaryImage{pix: pix, width: width}
}

// Width returns the number of columns, 0 for an image without rows.
func (b *BinaryImage) Width() int { return b.width }

// Height returns the number of rows.
func (b *BinaryImage) Height() int { return len(b.pix) }

// InBounds reports whether (x, y) addresses a pixel of the image.
func (b *BinaryImage) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < len(b.pix)
}

// At returns the pixel at (x, y).
func (b *BinaryImage) At(x, y int) (bool, error) {
	if !b.InBounds(x, y) {
		return false, b.rangeError(x, y)
	}
	return b.pix[y][x], nil
}

// Set stores value at (x, y).
func (b *BinaryImage) Set(x, y int, value bool) error {
	if !b.InBounds(x, y) {
		return b.rangeError(x, y)
	}
	b.pix[y][x] = value
	return nil
}

func (b *BinaryImage) rangeError(x, y int) error {
	return fmt.Errorf("coordinates (%d,%d) outside %dx%d image: %w", x, y, b.width, len(b.pix), ErrInvalidInput)
}

// value is At without the error: anything outside the image is paper.
func (b *BinaryImage) value(x, y int) bool {
	return b.InBounds(x, y) && b.pix[y][x]
}

// Neighbors returns the pixel at (x, y) together with its eight neighbors.
// Coordinates outside the image read as paper; Neighbors never fails.
func (b *BinaryImage) Neighbors(x, y int) (self bool, ring Ring) {
	ring[P2] = b.value(x, y-1)
	ring[P3] = b.value(x+1, y-1)
	ring[P4] = b.value(x+1, y)
	ring[P5] = b.value(x+1, y+1)
	ring[P6] = b.value(x, y+1)
	ring[P7] = b.value(x-1, y+1)
	ring[P8] = b.value(x-1, y)
	ring[P9] = b.value(x-1, y-1)
	return b.value(x, y), ring
}

// Difference returns a new image equal to b with every pixel that is ink in
// other turned to paper. Ink in other outside b's bounds is ignored.
func (b *BinaryImage) Difference(other *BinaryImage) *BinaryImage {
	out := b.Clone()
	for p := range other.All() {
		if p.Value && out.InBounds(p.X, p.Y) {
			out.pix[p.Y][p.X] = false
		}
	}
	return out
}

// All yields every pixel in row-major order (y outer, x inner).
// The sequence may be ranged over any number of times.
func (b *BinaryImage) All() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for y, row := range b.pix {
			for x, v := range row {
				if !yield(Pixel{X: x, Y: y, Value: v}) {
					return
				}
			}
		}
	}
}

// Count returns the number of ink pixels.
func (b *BinaryImage) Count() int {
	n := 0
	for _, row := range b.pix {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of b.
func (b *BinaryImage) Clone() *BinaryImage {
	pix := make([][]bool, len(b.pix))
	for y, row := range b.pix {
		pix[y] = append(make([]bool, 0, b.width), row...)
	}
	return &BinaryImage{pix: pix, width: b.width}
}

// Grid returns a copy of the pixels as rows of booleans.
func (b *BinaryImage) Grid() [][]bool {
	return b.Clone().pix
}

// Equal reports whether both images have the same size and pixels.
func (b *BinaryImage) Equal(other *BinaryImage) bool {
	if b.width != other.width || len(b.pix) != len(other.pix) {
		return false
	}
	for y, row := range b.pix {
		for x, v := range row {
			if other.pix[y][x] != v {
				return false
			}
		}
	}
	return true
}

// SubsetOf reports whether every ink pixel of b is also ink in other.
func (b *BinaryImage) SubsetOf(other *BinaryImage) bool {
	for p := range b.All() {
		if p.Value && !other.value(p.X, p.Y) {
			return false
		}
	}
	return true
}

// String renders the image as rows of '1' and '0', one row per line.
func (b *BinaryImage) String() string {
	var sb strings.Builder
	for _, row := range b.pix {
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
