package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestRenderGrid(t *testing.T) {
	img := RenderGrid(rowsToGrid("100", "001"), InkColor, PaperColor)

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", img.Bounds().Dx(), img.Bounds().Dy())
	}

	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}
	if got := img.NRGBAAt(0, 0); got != black {
		t.Errorf("ink (0,0): got %v, want %v", got, black)
	}
	if got := img.NRGBAAt(2, 1); got != black {
		t.Errorf("ink (2,1): got %v, want %v", got, black)
	}
	if got := img.NRGBAAt(1, 0); got != white {
		t.Errorf("paper (1,0): got %v, want %v", got, white)
	}
}

func TestOverlay(t *testing.T) {
	base := createInMemoryImage(2, 2, color.RGBA{0, 0, 0, 255})

	// The grid is larger than base; cells outside are skipped
	out := Overlay(base, rowsToGrid("100", "010", "001"), OverlayColor)

	red := color.NRGBA{255, 0, 0, 255}
	if got := out.NRGBAAt(0, 0); got != red {
		t.Errorf("(0,0): got %v, want %v", got, red)
	}
	if got := out.NRGBAAt(1, 1); got != red {
		t.Errorf("(1,1): got %v, want %v", got, red)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("(1,0): got %v, want black", got)
	}

	// base is left untouched
	if r, _, _, _ := base.At(0, 0).RGBA(); r != 0 {
		t.Error("Overlay modified its base image")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}, false},
		{"00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"#f00", color.NRGBA{255, 0, 0, 255}, false},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}, false},
		{"", color.NRGBA{}, true},
		{"#12", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"#112233zz", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	result, err := EncodePNG(RenderGrid(rowsToGrid("10", "01", "11"), InkColor, PaperColor))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	if result.Width != 2 || result.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 2x3", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if r, _, _, _ := decoded.At(1, 0).RGBA(); r>>8 != 255 {
		t.Errorf("decoded (1,0) should be paper, got r=%d", r>>8)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skeleton.png")
	if err := Save(RenderGrid(rowsToGrid("010", "111", "010"), InkColor, PaperColor), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	grid, err := Binarize(img, DefaultOptions())
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}
	if got := FormatTextGrid(grid); got[1] != "111" || got[0] != "010" {
		t.Errorf("saved grid: got %v", got)
	}

	if err := Save(RenderGrid(rowsToGrid("1"), InkColor, PaperColor), filepath.Join(t.TempDir(), "a.unknown")); err == nil {
		t.Error("Save should fail for unsupported extension")
	}
}

func TestMagnify(t *testing.T) {
	img := Magnify(RenderGrid(rowsToGrid("10", "01"), InkColor, PaperColor), 3)
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 6 {
		t.Fatalf("dimensions: got %dx%d, want 6x6", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got := img.NRGBAAt(2, 2); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("(2,2) should be ink, got %v", got)
	}
	if got := img.NRGBAAt(3, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("(3,0) should be paper, got %v", got)
	}

	same := Magnify(createInMemoryImage(4, 5, color.Black), 1)
	if same.Bounds().Dx() != 4 || same.Bounds().Dy() != 5 {
		t.Errorf("factor 1 should keep the size, got %v", same.Bounds())
	}
}

func TestCheckMagnify(t *testing.T) {
	tests := []struct {
		name    string
		size    image.Point
		factor  int
		wantErr bool
	}{
		{"unchanged", image.Pt(100, 100), 1, false},
		{"largest factor", image.Pt(100, 100), MaxMagnify, false},
		{"zero", image.Pt(100, 100), 0, true},
		{"factor too large", image.Pt(100, 100), 100000, true},
		{"too many pixels", image.Pt(4000, 4000), 8, true},
		{"wide but small", image.Pt(65536, 1), 32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMagnify(tt.size, tt.factor)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckMagnify(%v, %d) error = %v, wantErr %v", tt.size, tt.factor, err, tt.wantErr)
			}
		})
	}
}
