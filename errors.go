package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the general kind for arguments the engine cannot
// evaluate. The more specific errors below wrap it, so
// errors.Is(err, ErrInvalidInput) holds for all of them.
var ErrInvalidInput = errors.New("noise: invalid input")

var (
	// ErrInvalidSeed is returned when a seed cannot be read as an integer.
	ErrInvalidSeed = fmt.Errorf("%w: seed is not an integer", ErrInvalidInput)

	// ErrInvalidOctaves is returned when an octave count is below 1.
	ErrInvalidOctaves = fmt.Errorf("%w: octave count must be at least 1", ErrInvalidInput)

	// ErrShapeMismatch is returned when batched coordinate arrays differ
	// in shape.
	ErrShapeMismatch = fmt.Errorf("%w: coordinate shapes differ", ErrInvalidInput)

	// ErrInvalidTableSize is returned for a permutation table size that is
	// not a power of two in [MinTableSize, MaxTableSize].
	ErrInvalidTableSize = fmt.Errorf("%w: table size must be a power of two", ErrInvalidInput)
)
