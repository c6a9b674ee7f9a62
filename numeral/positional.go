package numeral

import "strings"

// renderPositional writes n in big-endian place-value notation over an
// alphabet of radix symbols. Zero is the dedicated first symbol; for
// positive n the most significant place value is found with exact integer
// arithmetic (no float logarithms) and digits are peeled most significant
// first.
func renderPositional(symbols []string, n uint64) string {
	if n == 0 {
		return symbols[0]
	}

	radix := uint64(len(symbols))
	place := uint64(1) // radix^(size-1), the most significant place
	size := 1
	for place <= n/radix {
		place *= radix
		size++
	}

	var sb strings.Builder
	for i := 0; i < size; i++ {
		digit := n / place
		sb.WriteString(symbols[digit])
		n -= digit * place
		place /= radix
	}
	return sb.String()
}
