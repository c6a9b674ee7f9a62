package numeral

import "strings"

// renderAdditive writes n by greedy decomposition over a weight-descending
// numeral list: each numeral is emitted as many times as its weight fits
// into the remainder. The greedy form is canonical only because catalog
// lists spell subtractive pairs ("iv", "ix", ...) as explicit entries
// ahead of their components; the renderer performs no canonicalization of
// its own.
//
// Zero reaches this function only when the final entry has weight zero
// (the validator guarantees it); that entry is the literal zero numeral.
func renderAdditive(numerals []Weighted, n uint64) string {
	if n == 0 {
		return numerals[len(numerals)-1].Symbol
	}

	var sb strings.Builder
	for _, wn := range numerals {
		if wn.Weight == 0 || wn.Weight > n {
			continue
		}
		reps := n / wn.Weight
		for i := uint64(0); i < reps; i++ {
			sb.WriteString(wn.Symbol)
		}
		n -= wn.Weight * reps
		if n == 0 {
			break
		}
	}
	return sb.String()
}
