// Package skeleton describes the structure of a thinned image.
//
// After thinning, every stroke of a glyph is one pixel wide, which makes its
// topology easy to read off the 8-neighborhood of each pixel:
//
//   - Endpoints have exactly one ink neighbor and mark where a stroke ends.
//   - Junctions have a crossing number of 3 or more: at least three separate
//     runs of ink meet there.
//   - Isolated pixels have no ink neighbor at all.
//
// Crossing number and neighbor count come from thinning.Classify, so the
// analysis agrees with the decisions the thinning rules made.
//
// Connected components are found with 8-connectivity (diagonal neighbors
// touch), matching the connectivity the thinning rules preserve.
//
// # Coordinate System
//
// Points use the image convention: (0,0) is the top-left pixel, X increases
// rightward and Y downward. Bounds are inclusive at (X1,Y1) and exclusive at
// (X2,Y2).
package skeleton
