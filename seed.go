package noise

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeed reads a seed from text such as a command-line flag or a config
// value. Decimal, hexadecimal (0x), octal (0o) and binary (0b) forms are
// accepted, with optional sign and underscores between digits.
//
// Text that is not an integer in the int64 range yields an error wrapping
// ErrInvalidSeed.
func ParseSeed(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeed, s)
	}
	return v, nil
}
