package render

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme indicates a theme name outside Themes().
var ErrUnknownTheme = errors.New("unknown theme")

// ErrUnknownRenderer indicates a renderer other than canvas or svg.
var ErrUnknownRenderer = errors.New("unknown renderer")

// ErrInvalidDocument indicates an option document that is not valid JSON.
var ErrInvalidDocument = errors.New("invalid option document")

// RenderError represents an error while writing a page.
type RenderError struct {
	Stage string // "config", "encode", "maps", "template"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error (%s): %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func newRenderError(stage string, err error) *RenderError {
	return &RenderError{Stage: stage, Err: err}
}
