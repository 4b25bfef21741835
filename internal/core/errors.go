package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when cell coordinates fall outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrShapeMismatch is returned when a grid does not match the configured dimensions.
	ErrShapeMismatch = errors.New("grid shape mismatch")
)

// ShapeMismatchError carries the expected and actual dimensions.
type ShapeMismatchError struct {
	Want Size
	Got  Size
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("grid shape mismatch: want %s, got %s", e.Want, e.Got)
}

// Is lets errors.Is match ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }
