package numeral

// Represented is a number that has been validated against a system: its
// String method is guaranteed to succeed and performs no further checks.
// A Represented is only meaningful together with the system that produced
// it; construct one via Validate.
type Represented struct {
	sys System
	n   uint64
}

// Validate checks whether n is representable in the system. It is a pure
// function of (system, n): positional and chinese systems accept the full
// uint64 domain, bijective and symbolic systems reject zero, additive
// systems reject zero unless the final numeral has weight zero, and fixed
// systems bound-check against their table size.
func (s System) Validate(n uint64) (Represented, error) {
	switch s.kind {
	case KindPositional, KindChinese:
		// Every uint64 is representable.

	case KindBijective, KindSymbolic:
		if n == 0 {
			return Represented{}, &RepresentationError{Code: CodeZero, N: n}
		}

	case KindAdditive:
		if n == 0 && s.numerals[len(s.numerals)-1].Weight != 0 {
			return Represented{}, &RepresentationError{Code: CodeZero, N: n}
		}

	case KindZeroableFixed:
		if n >= uint64(len(s.symbols)) {
			return Represented{}, &RepresentationError{Code: CodeTooLarge, N: n}
		}

	case KindNonZeroableFixed:
		if n == 0 {
			return Represented{}, &RepresentationError{Code: CodeZero, N: n}
		}
		if n > uint64(len(s.symbols)) {
			return Represented{}, &RepresentationError{Code: CodeTooLarge, N: n}
		}
	}
	return Represented{sys: s, n: n}, nil
}

// Value returns the validated number.
func (r Represented) Value() uint64 {
	return r.n
}

// System returns the system the number was validated against.
func (r Represented) System() System {
	return r.sys
}

// String renders the number. Validation already established that every
// table access is in bounds, so this never fails.
func (r Represented) String() string {
	return r.sys.render(r.n)
}
