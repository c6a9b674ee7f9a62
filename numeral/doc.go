// Package numeral renders non-negative integers as text in a numeral system.
//
// A System is an immutable definition: a kind plus its symbol tables. The
// closed set of kinds covers the numeral-theoretic families:
//
//   - Positional: place-value digits (Arabic, Devanagari, Bengali, ...)
//   - Bijective: positional without a zero digit, the spreadsheet-column
//     scheme (a, b, ..., z, aa, ab, ...)
//   - Additive: sign-value greedy decomposition (Roman, Greek, Hebrew)
//   - Symbolic: a cycling symbol repeated (*, †, ‡, ..., **, ††, ...)
//   - ZeroableFixed / NonZeroableFixed: bounded table lookups (circled
//     numbers and friends)
//   - Chinese: delegated to the chinese package converter
//
// # Usage
//
//	sys := numeral.Positional("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
//	s, err := sys.Render(42) // "42"
//
// Validation and rendering can be split: Validate returns a Represented
// value whose String method renders without any further checks.
//
// # Errors
//
// Rendering fails only when the number is outside the system's domain:
// CodeZero when the system cannot express zero, CodeTooLarge when a
// fixed-size table is exceeded. Both are deterministic properties of the
// inputs; retrying never helps.
//
// # Concurrency
//
// Systems are immutable after construction and safe for concurrent use
// without synchronization. Every operation is a pure function of its
// inputs.
package numeral
