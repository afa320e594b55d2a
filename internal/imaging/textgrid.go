package imaging

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxTextRowBytes bounds the length of one text grid row.
const maxTextRowBytes = 16 * 1024 * 1024

// ParseTextGrid reads a grid written as one line per row, '1' for ink and
// '0' for paper. Any other character (spaces, separators) is ignored, so
// "1 0 1" and "101" are the same row. Blank lines are skipped.
//
// Rows of different length are returned as read; validation is left to the
// consumer of the grid.
func ParseTextGrid(r io.Reader) ([][]bool, error) {
	var grid [][]bool
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTextRowBytes)
	for scanner.Scan() {
		var row []bool
		for _, c := range scanner.Text() {
			switch c {
			case '1':
				row = append(row, true)
			case '0':
				row = append(row, false)
			}
		}
		if row != nil {
			grid = append(grid, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	return grid, nil
}

// ParseTextRows is ParseTextGrid over rows already split into lines.
func ParseTextRows(rows []string) ([][]bool, error) {
	return ParseTextGrid(strings.NewReader(strings.Join(rows, "\n")))
}

// FormatTextGrid renders grid as rows of '1' and '0', the inverse of
// ParseTextGrid.
func FormatTextGrid(grid [][]bool) []string {
	rows := make([]string, len(grid))
	for y, row := range grid {
		b := make([]byte, len(row))
		for x, v := range row {
			b[x] = '0'
			if v {
				b[x] = '1'
			}
		}
		rows[y] = string(b)
	}
	return rows
}
