// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package boundary

import (
	"errors"

	"github.com/gogpu/shapes"
)

// Status is the int32 outcome of a call for hosts without Go errors.
// Zero and positive codes are successes; negative codes are failures.
type Status int32

const (
	// StatusOK means the call took effect.
	StatusOK Status = 0
	// StatusNoCursor means a mutation was dropped for lack of a cursor.
	StatusNoCursor Status = 1

	// StatusNotInitialized means the call came before Init.
	StatusNotInitialized Status = -1
	// StatusAlreadyInitialized means Init was called twice.
	StatusAlreadyInitialized Status = -2
	// StatusInvalidDimensions means a width or height was not positive.
	StatusInvalidDimensions Status = -3
	// StatusSurface means the drawing surface failed.
	StatusSurface Status = -4
	// StatusClosed means the state was torn down.
	StatusClosed Status = -5
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoCursor:
		return "no-cursor"
	case StatusNotInitialized:
		return "not-initialized"
	case StatusAlreadyInitialized:
		return "already-initialized"
	case StatusInvalidDimensions:
		return "invalid-dimensions"
	case StatusSurface:
		return "surface"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// StatusOf maps a call outcome to a Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNotInitialized):
		return StatusNotInitialized
	case errors.Is(err, ErrAlreadyInitialized):
		return StatusAlreadyInitialized
	case errors.Is(err, shapes.ErrInvalidDimensions):
		return StatusInvalidDimensions
	case errors.Is(err, shapes.ErrStateClosed):
		return StatusClosed
	default:
		return StatusSurface
	}
}

// ResultStatus maps a mutation outcome to a Status.
func ResultStatus(r shapes.Result, err error) Status {
	if err != nil {
		return StatusOf(err)
	}
	if r == shapes.NoCursor {
		return StatusNoCursor
	}
	return StatusOK
}
