// Package chinese converts unsigned integers to Chinese numeral strings
// using the ten-thousand grouping scale (万/亿/兆/京).
//
// The converter is total over uint64: every value has a representation,
// including zero. Both the Simplified/Traditional glyph variants and the
// Lower (everyday) / Upper (banknote) digit cases are supported.
package chinese

import "strings"

// Variant selects the glyph set.
type Variant uint8

const (
	Simple Variant = iota
	Traditional
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Simple:
		return "simple"
	case Traditional:
		return "traditional"
	default:
		return "unknown"
	}
}

// Case selects everyday digits (Lower) or banknote digits (Upper).
type Case uint8

const (
	Lower Case = iota
	Upper
)

// String returns the case name.
func (c Case) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "unknown"
	}
}

// digits is indexed by [variant][case][digit value].
var digits = [2][2][10]string{
	{ // Simple
		{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
		{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"},
	},
	{ // Traditional
		{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
		{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"},
	},
}

// smallUnits is indexed by [case]: ten, hundred, thousand.
var smallUnits = [2][3]string{
	{"十", "百", "千"},
	{"拾", "佰", "仟"},
}

// groupUnits is indexed by [variant][group]: the scale unit appended to each
// four-digit group, least significant first. uint64 never exceeds the 京
// (10^16) group.
var groupUnits = [2][5]string{
	{"", "万", "亿", "兆", "京"},
	{"", "萬", "億", "兆", "京"},
}

// Format renders n as a Chinese numeral string.
func Format(v Variant, c Case, n uint64) string {
	if n == 0 {
		return digits[v][c][0]
	}

	// Split into four-digit groups, least significant first.
	var groups [5]uint64
	count := 0
	for m := n; m > 0; m /= 10000 {
		groups[count] = m % 10000
		count++
	}

	var sb strings.Builder
	gap := false
	for i := count - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			// A skipped group becomes part of a zero gap.
			gap = sb.Len() > 0
			continue
		}
		// A single 零 marks any run of skipped places, including the
		// leading zeros of a group below the top one.
		if gap || (sb.Len() > 0 && g < 1000) {
			sb.WriteString(digits[v][c][0])
		}
		gap = false
		writeGroup(&sb, v, c, g, sb.Len() == 0)
		sb.WriteString(groupUnits[v][i])
	}
	return sb.String()
}

// writeGroup renders a group value in 1..9999 with the in-group units.
// topmost is true for the most significant rendered group; it controls the
// conventional dropping of the leading 一 before 十 (十一 rather than 一十一).
func writeGroup(sb *strings.Builder, v Variant, c Case, g uint64, topmost bool) {
	d := digits[v][c]
	u := smallUnits[c]
	places := [4]uint64{g / 1000 % 10, g / 100 % 10, g / 10 % 10, g % 10}

	written := false
	gap := false
	for i, dv := range places {
		if dv == 0 {
			gap = gap || written
			continue
		}
		if gap {
			sb.WriteString(d[0])
			gap = false
		}
		// Leading tens drop the 一 in the everyday reading; banknote
		// style always spells 壹拾.
		if !(i == 2 && dv == 1 && topmost && !written && c == Lower) {
			sb.WriteString(d[dv])
		}
		if i < 3 {
			sb.WriteString(u[2-i])
		}
		written = true
	}
}
