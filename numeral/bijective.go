package numeral

import (
	"math"
	"strings"
)

// renderBijective writes n >= 1 in bijective base-b, where b is the symbol
// count: the spreadsheet-column scheme with no zero digit.
//
// Bijective numerals of length k cover (b^k - 1)/(b - 1) values starting at
// (b^(k-1) + ... + b + 1), so the digit count and the offset to subtract
// before positional-style peeling are both that closed form. It is
// accumulated with integer arithmetic; the quantities are clamped against
// uint64 overflow near the top of the range, where longer lengths cannot
// be reached anyway.
func renderBijective(symbols []string, n uint64) string {
	radix := uint64(len(symbols))
	if radix == 1 {
		// Bijective base 1 is tally notation.
		return strings.Repeat(symbols[0], int(n))
	}

	// size is the largest k with offset(k) = (radix^k - 1)/(radix - 1) <= n.
	size := 0
	offset := uint64(0) // offset(size)
	place := uint64(1)  // radix^size
	for place <= math.MaxUint64-offset && offset+place <= n {
		offset += place
		size++
		if place > math.MaxUint64/radix {
			break
		}
		place *= radix
	}

	// Shift into the zero-based positional range and peel exactly size
	// digits, most significant first. radix^(size-1) <= n, so msd cannot
	// overflow.
	n -= offset
	msd := uint64(1)
	for i := 1; i < size; i++ {
		msd *= radix
	}

	var sb strings.Builder
	for i := 0; i < size; i++ {
		digit := n / msd
		sb.WriteString(symbols[digit])
		n -= digit * msd
		msd /= radix
	}
	return sb.String()
}
