// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// Sentinel errors for surface package.
var (
	// ErrClosed is returned by every operation on a closed surface.
	ErrClosed = errors.New("surface: closed")

	// ErrWindowOutOfBounds is returned when a clip window does not fit the display.
	ErrWindowOutOfBounds = errors.New("surface: clip window out of bounds")

	// ErrShortBuffer is returned when WriteRaw is given fewer bytes than count pixels need.
	ErrShortBuffer = errors.New("surface: pixel buffer too short")
)

// WindowError describes a rejected clip window.
type WindowError struct {
	X, Y, W, H int
}

func (e *WindowError) Error() string {
	return "surface: clip window out of bounds"
}

// Unwrap lets errors.Is match ErrWindowOutOfBounds.
func (e *WindowError) Unwrap() error {
	return ErrWindowOutOfBounds
}
