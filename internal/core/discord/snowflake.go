package discord

import (
	"cmp"
	"fmt"
	"strconv"
)

// ParseSnowflake parses a Discord ID.
func ParseSnowflake(id string) (uint64, error) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSnowflake, id)
	}
	return v, nil
}

// CompareSnowflakes compares two IDs numerically, so "9" sorts before "10".
func CompareSnowflakes(a, b string) (int, error) {
	av, err := ParseSnowflake(a)
	if err != nil {
		return 0, err
	}
	bv, err := ParseSnowflake(b)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(av, bv), nil
}
