package domain

import (
	"github.com/yigit/mentorhub/internal/pkg/validation"
)

// ClockTime is a 24h wall-clock time in "HH:MM" form. The fixed-width format
// makes lexicographic comparison equivalent to temporal comparison, so the
// ordering methods work directly on the string value.
type ClockTime string

// Valid reports whether the value is a well-formed 24h HH:MM string.
func (c ClockTime) Valid() bool {
	return validation.IsValidClockTime(string(c))
}

// Before reports whether c is strictly earlier than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c < other
}

// After reports whether c is strictly later than other.
func (c ClockTime) After(other ClockTime) bool {
	return c > other
}

func (c ClockTime) String() string {
	return string(c)
}
