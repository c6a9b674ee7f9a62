package numeral

import (
	"fmt"
	"slices"

	"github.com/Neumenon/numeral/chinese"
)

// Kind identifies a numeral system family.
type Kind uint8

const (
	KindPositional Kind = iota
	KindBijective
	KindAdditive
	KindSymbolic
	KindZeroableFixed
	KindNonZeroableFixed
	KindChinese
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindBijective:
		return "bijective"
	case KindAdditive:
		return "additive"
	case KindSymbolic:
		return "symbolic"
	case KindZeroableFixed:
		return "fixed"
	case KindNonZeroableFixed:
		return "fixed-nonzero"
	case KindChinese:
		return "chinese"
	default:
		return "unknown"
	}
}

// Weighted is one entry of an additive numeral list: a symbol string and
// the value it contributes.
type Weighted struct {
	Symbol string
	Weight uint64
}

// System is an immutable numeral system definition. Construct one with the
// per-kind constructors; the zero value is not a usable system.
//
// Systems are cheap handles (the tables are shared, never copied) and are
// safe for concurrent use.
type System struct {
	kind     Kind
	symbols  []string   // all kinds except additive and chinese
	numerals []Weighted // additive only, strictly decreasing weights
	variant  chinese.Variant
	chCase   chinese.Case
}

// ============================================================
// Constructors
// ============================================================

// Positional creates a place-value system over the given digit alphabet.
// The first symbol is the zero digit. At least two symbols are required.
func Positional(symbols ...string) System {
	if len(symbols) < 2 {
		panic("numeral: positional system needs at least two symbols")
	}
	return System{kind: KindPositional, symbols: symbols}
}

// Bijective creates a bijective base-b system (no zero digit) where b is
// the number of symbols. A single symbol yields tally notation.
func Bijective(symbols ...string) System {
	if len(symbols) == 0 {
		panic("numeral: bijective system needs at least one symbol")
	}
	return System{kind: KindBijective, symbols: symbols}
}

// Additive creates a sign-value system. The numerals must be supplied in
// strictly decreasing weight order; a zero weight is allowed only as the
// final entry and is the literal rendering of zero. The engine never
// re-sorts the list: an out-of-order list produces wrong output, not an
// error. Verify checks the ordering for load-time catalogs.
func Additive(numerals ...Weighted) System {
	if len(numerals) == 0 {
		panic("numeral: additive system needs at least one numeral")
	}
	return System{kind: KindAdditive, numerals: numerals}
}

// Symbolic creates a repeating-symbol system: values cycle through the
// symbols, repeating one more time per full cycle.
func Symbolic(symbols ...string) System {
	if len(symbols) == 0 {
		panic("numeral: symbolic system needs at least one symbol")
	}
	return System{kind: KindSymbolic, symbols: symbols}
}

// ZeroableFixed creates a bounded lookup indexed from zero: n is rendered
// as the n-th symbol.
func ZeroableFixed(symbols ...string) System {
	if len(symbols) == 0 {
		panic("numeral: fixed system needs at least one symbol")
	}
	return System{kind: KindZeroableFixed, symbols: symbols}
}

// NonZeroableFixed creates a bounded lookup indexed from one: n is
// rendered as the (n-1)-th symbol.
func NonZeroableFixed(symbols ...string) System {
	if len(symbols) == 0 {
		panic("numeral: fixed system needs at least one symbol")
	}
	return System{kind: KindNonZeroableFixed, symbols: symbols}
}

// Chinese creates a system delegated to the chinese package converter,
// which is total over uint64.
func Chinese(variant chinese.Variant, c chinese.Case) System {
	return System{kind: KindChinese, variant: variant, chCase: c}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the system's kind.
func (s System) Kind() Kind {
	return s.kind
}

// Symbols returns a copy of the symbol table. Empty for additive and
// chinese systems.
func (s System) Symbols() []string {
	return slices.Clone(s.symbols)
}

// Numerals returns a copy of the additive numeral list. Empty for other
// kinds.
func (s System) Numerals() []Weighted {
	return slices.Clone(s.numerals)
}

// Verify checks that the definition is well-formed: symbol counts, symbol
// distinctness, decreasing additive weights, zero weight only in final
// position, and additive completeness (a weight-1 entry, without which the
// greedy renderer can terminate with a truncated string). Malformed
// definitions are a programming error; Verify exists so catalogs can check
// themselves at load time rather than paying for checks on every render.
func (s System) Verify() error {
	switch s.kind {
	case KindPositional:
		if len(s.symbols) < 2 {
			return fmt.Errorf("numeral: positional system needs at least two symbols, got %d", len(s.symbols))
		}
		return verifySymbols(s.symbols, true)

	case KindBijective, KindSymbolic:
		if len(s.symbols) == 0 {
			return fmt.Errorf("numeral: %s system has no symbols", s.kind)
		}
		return verifySymbols(s.symbols, true)

	case KindZeroableFixed, KindNonZeroableFixed:
		if len(s.symbols) == 0 {
			return fmt.Errorf("numeral: %s system has no symbols", s.kind)
		}
		return verifySymbols(s.symbols, false)

	case KindAdditive:
		if len(s.numerals) == 0 {
			return fmt.Errorf("numeral: additive system has no numerals")
		}
		prev := ^uint64(0)
		hasOne := false
		for i, wn := range s.numerals {
			if wn.Symbol == "" {
				return fmt.Errorf("numeral: additive numeral %d has an empty symbol", i)
			}
			if i > 0 && wn.Weight >= prev {
				return fmt.Errorf("numeral: additive weights must strictly decrease, got %d after %d", wn.Weight, prev)
			}
			if wn.Weight == 0 && i != len(s.numerals)-1 {
				return fmt.Errorf("numeral: zero weight is only allowed as the final numeral")
			}
			if wn.Weight == 1 {
				hasOne = true
			}
			prev = wn.Weight
		}
		if !hasOne {
			return fmt.Errorf("numeral: additive system has no weight-1 numeral; greedy rendering would truncate")
		}
		return nil

	case KindChinese:
		return nil
	}
	return fmt.Errorf("numeral: unknown system kind %d", s.kind)
}

func verifySymbols(symbols []string, distinct bool) error {
	seen := make(map[string]int, len(symbols))
	for i, sym := range symbols {
		if sym == "" {
			return fmt.Errorf("numeral: symbol %d is empty", i)
		}
		if j, dup := seen[sym]; distinct && dup {
			return fmt.Errorf("numeral: symbol %q appears at both %d and %d", sym, j, i)
		}
		seen[sym] = i
	}
	return nil
}
