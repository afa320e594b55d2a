package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage creates a solid image without touching disk.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with a different color in each
// quadrant: black top-left, red top-right, light gray bottom-left and white
// bottom-right.
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			switch {
			case x < width/2 && y < height/2:
				c = color.RGBA{0, 0, 0, 255}
			case x >= width/2 && y < height/2:
				c = color.RGBA{255, 0, 0, 255}
			case x < width/2:
				c = color.RGBA{220, 220, 220, 255}
			default:
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// writePNG encodes img into a temp directory owned by the test.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createTestImage writes a solid PNG and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	return writePNG(t, "test-image.png", createInMemoryImage(width, height, c))
}

func rowsToGrid(rows ...string) [][]bool {
	grid := make([][]bool, len(rows))
	for y, row := range rows {
		grid[y] = make([]bool, len(row))
		for x, c := range row {
			grid[y][x] = c == '1'
		}
	}
	return grid
}
