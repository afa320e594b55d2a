package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultGridColor is used by DrawGrid when no color is given: a
// semi-transparent blue that stays visible on both ink and overlay red.
var DefaultGridColor color.Color = color.NRGBA{0, 96, 255, 160}

// DrawGrid draws a coordinate grid onto img in place, with a line every
// spacing pixels. When labels is true each grid intersection is annotated
// with its coordinates divided by unit, so a skeleton magnified by 8 with
// spacing 8 and unit 8 is labeled in source pixels. A unit below 1 is
// treated as 1.
func DrawGrid(img *image.NRGBA, spacing, unit int, labels bool, c color.Color) error {
	if spacing < 1 {
		return fmt.Errorf("grid spacing must be positive, got %d", spacing)
	}
	if unit < 1 {
		unit = 1
	}
	if c == nil {
		c = DefaultGridColor
	}

	bounds := img.Bounds()
	line := color.NRGBAModel.Convert(c).(color.NRGBA)

	for x := bounds.Min.X + spacing; x < bounds.Max.X; x += spacing {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			blend(img, x, y, line)
		}
	}
	for y := bounds.Min.Y + spacing; y < bounds.Max.Y; y += spacing {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// Intersections were already blended by the vertical pass.
			if (x-bounds.Min.X)%spacing == 0 && x != bounds.Min.X {
				continue
			}
			blend(img, x, y, line)
		}
	}

	if labels {
		fg := color.NRGBA{255, 255, 255, 255}
		bg := color.NRGBA{0, 0, 0, 200}
		for y := bounds.Min.Y + spacing; y < bounds.Max.Y; y += spacing {
			for x := bounds.Min.X + spacing; x < bounds.Max.X; x += spacing {
				label := fmt.Sprintf("%d,%d", (x-bounds.Min.X)/unit, (y-bounds.Min.Y)/unit)
				drawLabel(img, x+2, y+2, label, fg, bg)
			}
		}
	}
	return nil
}

// blend composites c over the pixel at (x, y) using c's alpha.
func blend(img *image.NRGBA, x, y int, c color.NRGBA) {
	if c.A == 255 {
		img.SetNRGBA(x, y, c)
		return
	}
	under := img.NRGBAAt(x, y)
	a := uint32(c.A)
	mix := func(top, bottom uint8) uint8 {
		return uint8((uint32(top)*a + uint32(bottom)*(255-a)) / 255)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: mix(c.R, under.R),
		G: mix(c.G, under.G),
		B: mix(c.B, under.B),
		A: max(under.A, c.A),
	})
}

// labelFace is the bitmap face used for grid labels. Glyphs are drawn
// without anti-aliasing, so labels stay sharp on magnified skeletons.
var labelFace font.Face = basicfont.Face7x13

// drawLabel writes text with its top-left corner at (x, y) on a filled
// background box. Pixels outside img are clipped.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	metrics := labelFace.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: labelFace,
		Dot:  fixed.P(x, y+metrics.Ascent.Ceil()),
	}

	width := d.MeasureString(text).Ceil()
	box := image.Rect(x-1, y-1, x+width+1, y+metrics.Height.Ceil())
	draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Over)

	d.DrawString(text)
}
