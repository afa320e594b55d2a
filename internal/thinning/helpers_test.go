package thinning_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/imgthin/internal/thinning"
)

// grid builds a boolean grid from rows of '1' (ink) and '0' (paper).
func grid(rows ...string) [][]bool {
	out := make([][]bool, len(rows))
	for y, row := range rows {
		out[y] = make([]bool, len(row))
		for x, c := range row {
			out[y][x] = c == '1'
		}
	}
	return out
}

// mustImage builds a BinaryImage from rows, failing the test on error.
func mustImage(t *testing.T, rows ...string) *thinning.BinaryImage {
	t.Helper()
	img, err := thinning.New(grid(rows...))
	require.NoError(t, err)
	return img
}

// loadFixture reads testdata/name, one row of '1'/'0' per line.
func loadFixture(t *testing.T, name string) *thinning.BinaryImage {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return mustImage(t, strings.Fields(string(data))...)
}

// ring builds a Ring from an 8-character string listing P2..P9.
func ring(p string) thinning.Ring {
	var r thinning.Ring
	for i := range r {
		r[i] = p[i] == '1'
	}
	return r
}

// ringString is the inverse of ring.
func ringString(r thinning.Ring) string {
	b := make([]byte, len(r))
	for i, v := range r {
		b[i] = '0'
		if v {
			b[i] = '1'
		}
	}
	return string(b)
}

// allRings returns every possible neighborhood.
func allRings() []thinning.Ring {
	rings := make([]thinning.Ring, 0, 256)
	for ne := uint8(0); ne < 16; ne++ {
		for sw := uint8(0); sw < 16; sw++ {
			rings = append(rings, thinning.RingFromCodes(ne, sw))
		}
	}
	return rings
}
