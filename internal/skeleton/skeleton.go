package skeleton

import (
	"github.com/ironsheep/imgthin/internal/thinning"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Bounds is a bounding box; (X1,Y1) inclusive, (X2,Y2) exclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Component is one 8-connected stroke of a skeleton.
type Component struct {
	// Pixels is the number of ink pixels in the component.
	Pixels int `json:"pixels"`

	// Bounds encloses every pixel of the component.
	Bounds Bounds `json:"bounds"`

	// Endpoints and Junctions count the component's feature points.
	Endpoints int `json:"endpoints"`
	Junctions int `json:"junctions"`
}

// Features summarizes the structure of a skeleton.
type Features struct {
	// Pixels is the total number of ink pixels.
	Pixels int `json:"pixels"`

	// Endpoints are ink pixels with exactly one ink neighbor: stroke ends.
	Endpoints []Point `json:"endpoints"`

	// Junctions are ink pixels where three or more separate strokes meet
	// (crossing number of at least 3).
	Junctions []Point `json:"junctions"`

	// Isolated are ink pixels without any ink neighbor.
	Isolated []Point `json:"isolated"`

	// Components lists the 8-connected strokes in scan order of their first
	// pixel.
	Components []Component `json:"components"`
}

// Analyze classifies every ink pixel of img and groups the pixels into
// 8-connected components. img is usually the output of a thinning engine,
// but any binary image is accepted.
func Analyze(img *thinning.BinaryImage) Features {
	f := Features{
		Endpoints:  make([]Point, 0),
		Junctions:  make([]Point, 0),
		Isolated:   make([]Point, 0),
		Components: make([]Component, 0),
	}

	width, height := img.Width(), img.Height()
	kind := make([][]pointKind, height)
	for y := range kind {
		kind[y] = make([]pointKind, width)
	}

	for p := range img.All() {
		if !p.Value {
			continue
		}
		f.Pixels++

		_, ring := img.Neighbors(p.X, p.Y)
		k := classifyPoint(ring)
		kind[p.Y][p.X] = k
		switch k {
		case endpoint:
			f.Endpoints = append(f.Endpoints, Point{X: p.X, Y: p.Y})
		case junction:
			f.Junctions = append(f.Junctions, Point{X: p.X, Y: p.Y})
		case isolated:
			f.Isolated = append(f.Isolated, Point{X: p.X, Y: p.Y})
		}
	}

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}
	for p := range img.All() {
		if p.Value && !visited[p.Y][p.X] {
			f.Components = append(f.Components, floodFill(img, kind, visited, p.X, p.Y))
		}
	}

	return f
}

type pointKind int

const (
	stroke pointKind = iota
	endpoint
	junction
	isolated
)

// classifyPoint uses the same crossing number and neighbor count as the
// thinning rules.
func classifyPoint(ring thinning.Ring) pointKind {
	crossing, count := thinning.Classify(ring)
	switch {
	case count == 0:
		return isolated
	case count == 1:
		return endpoint
	case crossing >= 3:
		return junction
	default:
		return stroke
	}
}

// floodFill collects the 8-connected component containing (startX, startY).
//
// Uses an explicit stack instead of recursion so long strokes cannot
// overflow the goroutine stack.
func floodFill(img *thinning.BinaryImage, kind [][]pointKind, visited [][]bool, startX, startY int) Component {
	c := Component{Bounds: Bounds{X1: startX, Y1: startY, X2: startX + 1, Y2: startY + 1}}
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !img.InBounds(p.X, p.Y) || visited[p.Y][p.X] {
			continue
		}
		if v, _ := img.At(p.X, p.Y); !v {
			continue
		}
		visited[p.Y][p.X] = true

		c.Pixels++
		switch kind[p.Y][p.X] {
		case endpoint:
			c.Endpoints++
		case junction:
			c.Junctions++
		}
		c.Bounds.X1 = min(c.Bounds.X1, p.X)
		c.Bounds.Y1 = min(c.Bounds.Y1, p.Y)
		c.Bounds.X2 = max(c.Bounds.X2, p.X+1)
		c.Bounds.Y2 = max(c.Bounds.Y2, p.Y+1)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return c
}
