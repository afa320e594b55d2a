package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/segment"
	"github.com/lucasb-eyer/go-colorful"
)

// Method selects how a pixel is judged to be ink.
type Method string

const (
	// MethodRGB marks a pixel as ink when every channel is below Level.
	MethodRGB Method = "rgb"

	// MethodLuma marks a pixel as ink when its luminance is below Level.
	MethodLuma Method = "luma"

	// MethodLightness marks a pixel as ink when its CIE L* lightness is below
	// Level/255. Lightness follows perceived brightness more closely than
	// luma for colored ink.
	MethodLightness Method = "lightness"
)

// DefaultLevel is the threshold used when Options.Level is zero.
const DefaultLevel = 200

// Options controls Binarize.
type Options struct {
	// Method is the ink predicate. Empty selects MethodRGB.
	Method Method

	// Level is the 8-bit threshold. Zero selects DefaultLevel.
	Level uint8

	// Invert treats light pixels as ink, for light-on-dark images.
	Invert bool
}

// DefaultOptions returns the options used by the command line tool when no
// flags are given.
func DefaultOptions() Options {
	return Options{Method: MethodRGB, Level: DefaultLevel}
}

// ParseMethod converts a case-insensitive name into a Method. An empty name
// selects MethodRGB.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return MethodRGB, nil
	case MethodRGB, MethodLuma, MethodLightness:
		return m, nil
	default:
		return "", fmt.Errorf("unknown binarization method %q (want rgb, luma or lightness)", name)
	}
}

// Binarize converts img into a grid of ink (true) and paper (false) pixels,
// indexed grid[y][x] from the top-left corner of img's bounds.
//
// Fully transparent pixels are always paper, whatever the method.
func Binarize(img image.Image, opts Options) ([][]bool, error) {
	method, err := ParseMethod(string(opts.Method))
	if err != nil {
		return nil, err
	}
	level := opts.Level
	if level == 0 {
		level = DefaultLevel
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var dark func(x, y int) bool
	switch method {
	case MethodRGB:
		dark = func(x, y int) bool {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			return c.R < level && c.G < level && c.B < level
		}
	case MethodLuma:
		thresholded := segment.Threshold(img, level)
		tb := thresholded.Bounds()
		dark = func(x, y int) bool {
			return thresholded.GrayAt(tb.Min.X+x, tb.Min.Y+y).Y == 0
		}
	case MethodLightness:
		limit := float64(level) / 255.0
		dark = func(x, y int) bool {
			c, ok := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				return false
			}
			l, _, _ := c.Lab()
			return l < limit
		}
	}

	grid := make([][]bool, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			grid[y][x] = dark(x, y) != opts.Invert
		}
	}
	return grid, nil
}

// InkCoverage returns the fraction of ink pixels in grid, 0 for an empty grid.
func InkCoverage(grid [][]bool) float64 {
	total, ink := 0, 0
	for _, row := range grid {
		for _, v := range row {
			total++
			if v {
				ink++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(ink) / float64(total)
}
