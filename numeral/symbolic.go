package numeral

import "strings"

// renderSymbolic writes n >= 1 with a cycling symbol table of length k:
// values 1..k are one copy of each symbol in turn, values k+1..2k two
// copies, and so on. The repeat count grows by one per full cycle, so
// output length is linear in n.
func renderSymbolic(symbols []string, n uint64) string {
	k := uint64(len(symbols))
	sym := symbols[(n-1)%k]
	reps := (n-1)/k + 1 // ceil(n / k)
	return strings.Repeat(sym, int(reps))
}
