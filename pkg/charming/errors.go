package charming

import (
	"errors"
	"fmt"
)

// ErrNilSeries indicates a nil entry in the series list.
var ErrNilSeries = errors.New("nil series")

// ErrNilComponent indicates a nil entry in a component list.
var ErrNilComponent = errors.New("nil component")

// ErrGeoMap indicates an unusable registered map.
var ErrGeoMap = errors.New("invalid geo map")

// PatchError represents a failed document patch.
type PatchError struct {
	Path string
	Err  error
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch %q: %v", e.Path, e.Err)
}

func (e *PatchError) Unwrap() error {
	return e.Err
}
