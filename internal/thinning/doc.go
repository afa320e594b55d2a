// Package thinning reduces a binary raster image to a 1-pixel-wide skeleton.
//
// The package works on plain boolean grids: true is ink (foreground), false
// is paper (background). Decoding image files and choosing which pixels count
// as ink is left to the caller (see package imaging).
//
// # Coordinate System
//
// Rows are indexed by y (0 = top) and columns by x (0 = left). Every row of a
// grid must have the same length; New rejects ragged input with
// ErrInvalidInput.
//
// # Neighborhood
//
// The eight neighbors of a pixel P1 are named P2..P9 clockwise from north:
//
//	P9 P2 P3
//	P8 P1 P4
//	P7 P6 P5
//
// Neighbors outside the image always read as background, so border pixels
// behave as if the image were surrounded by paper.
//
// # Engines
//
// Two engines share the Engine interface:
//
//   - StandardEngine applies the direct two-sub-iteration rule (StandardRule)
//     and stops when a full pass removes nothing.
//   - TableEngine looks every decision up in two precomputed 16x16 tables
//     built from ExtendedRule, which also deletes some patterns with a
//     crossing number of 2 and allows up to 7 neighbors.
//
// The two rules are not equivalent and the engines can produce different
// skeletons for the same input.
//
// # Thread Safety
//
// BinaryImage is not safe for concurrent mutation. Engines keep no state
// between calls and the decision tables are read-only once built, so
// separate images may be thinned concurrently.
package thinning
