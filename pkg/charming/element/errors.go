package element

import "errors"

// ErrUnsupportedValue indicates a Go value that has no composite value form.
var ErrUnsupportedValue = errors.New("unsupported composite value")

// ErrUnknownVariant indicates a string that names no variant of an enum.
var ErrUnknownVariant = errors.New("unknown variant")
