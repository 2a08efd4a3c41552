package engine

import "errors"

// ErrBadDocument is returned when an imported payload is not a well-formed
// study document. The store is left untouched in that case.
var ErrBadDocument = errors.New("not a valid study document")
