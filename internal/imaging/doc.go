// Package imaging converts between raster image files and the boolean grids
// thinned by package thinning.
//
// The thinning core never touches files or colors; this package is the
// adapter on either side of it:
//
//	file -> ImageCache.Load -> Crop/Scale -> Binarize -> [][]bool
//	[][]bool -> RenderGrid/Overlay -> Magnify/DrawGrid -> EncodePNG/Save
//
// Skeletons of small glyphs are hard to read at 1:1, so rendered grids can
// be magnified and annotated with a coordinate grid labeled in source pixels.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y downward. Regions are inclusive at (X1,Y1)
// and exclusive at (X2,Y2). Grids are indexed grid[y][x] relative to the
// top-left corner of the source image's bounds.
//
// # Binarization
//
// Three ink predicates are available, all compared against an 8-bit Level
// (default 200):
//   - rgb: every channel below Level
//   - luma: grayscale luminance below Level
//   - lightness: CIE L* below Level/255
//
// Invert swaps ink and paper for light-on-dark images. Fully transparent
// pixels are always paper.
//
// # Text Grids
//
// Small grids can be written as text, one row per line with '1' for ink and
// '0' for paper. Test fixtures and the grid_thin server tool use this form.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless
// and never modify their input images.
package imaging
