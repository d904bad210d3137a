package core

import "errors"

// Input rejections. None of them change state; callers are expected to drop them.
var (
	// ErrOutOfBounds is returned for positions outside the board.
	ErrOutOfBounds = errors.New("match3: position out of bounds")
	// ErrInvalidAdjacency is returned for swaps between non-adjacent positions.
	ErrInvalidAdjacency = errors.New("match3: positions are not adjacent")
	// ErrBusy is returned for input that arrives while a resolution is in flight.
	ErrBusy = errors.New("match3: resolution in progress")
)
