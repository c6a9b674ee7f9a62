package numeral

import (
	"errors"
	"fmt"
)

// ErrorCode is the closed set of reasons a number can be rejected.
type ErrorCode uint8

const (
	// CodeZero: the system's numeral space has no representation of zero.
	CodeZero ErrorCode = iota
	// CodeTooLarge: the number exceeds a fixed-size table's capacity.
	CodeTooLarge
)

// String returns the machine-readable code name.
func (c ErrorCode) String() string {
	switch c {
	case CodeZero:
		return "zero"
	case CodeTooLarge:
		return "too_large"
	default:
		return "unknown"
	}
}

// RepresentationError reports that a number cannot be expressed in a
// system. It is never transient: the same inputs fail identically forever.
type RepresentationError struct {
	Code ErrorCode
	N    uint64
}

func (e *RepresentationError) Error() string {
	switch e.Code {
	case CodeZero:
		return "numeral: system has no representation of zero"
	case CodeTooLarge:
		return fmt.Sprintf("numeral: %d exceeds the system's capacity", e.N)
	default:
		return fmt.Sprintf("numeral: %d cannot be represented", e.N)
	}
}

// IsZero reports whether err is a CodeZero representation error.
func IsZero(err error) bool {
	var re *RepresentationError
	return errors.As(err, &re) && re.Code == CodeZero
}

// IsTooLarge reports whether err is a CodeTooLarge representation error.
func IsTooLarge(err error) bool {
	var re *RepresentationError
	return errors.As(err, &re) && re.Code == CodeTooLarge
}
