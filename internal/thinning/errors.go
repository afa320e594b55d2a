package thinning

import "errors"

// ErrInvalidInput reports a ragged grid or an out-of-range pixel access.
// Errors returned by this package wrap it with context; test with errors.Is.
var ErrInvalidInput = errors.New("thinning: invalid input")
