package numeral

import "github.com/Neumenon/numeral/chinese"

// Render validates n and renders it, failing with a *RepresentationError
// when the system cannot express n.
func (s System) Render(n uint64) (string, error) {
	r, err := s.Validate(n)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// render dispatches to the kind-specific renderer. Callers must have
// validated n first; every case below indexes its tables blindly.
func (s System) render(n uint64) string {
	switch s.kind {
	case KindPositional:
		return renderPositional(s.symbols, n)
	case KindBijective:
		return renderBijective(s.symbols, n)
	case KindAdditive:
		return renderAdditive(s.numerals, n)
	case KindSymbolic:
		return renderSymbolic(s.symbols, n)
	case KindZeroableFixed:
		// Direct lookup, validated as n < len(symbols).
		return s.symbols[n]
	case KindNonZeroableFixed:
		// Direct lookup, validated as 1 <= n <= len(symbols).
		return s.symbols[n-1]
	case KindChinese:
		return chinese.Format(s.variant, s.chCase, n)
	}
	panic("numeral: unhandled system kind")
}
