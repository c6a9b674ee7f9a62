package systems

import (
	"github.com/Neumenon/numeral/chinese"
	"github.com/Neumenon/numeral/numeral"
)

// runes splits a string into one symbol per rune, for alphabets whose
// symbols are single code points.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func wn(symbol string, weight uint64) numeral.Weighted {
	return numeral.Weighted{Symbol: symbol, Weight: weight}
}

// Predefined definitions. Initialized once, read-only afterwards; safe to
// share across goroutines.
var (
	arabic               = numeral.Positional(runes("0123456789")...)
	easternArabic        = numeral.Positional(runes("٠١٢٣٤٥٦٧٨٩")...)
	easternArabicPersian = numeral.Positional(runes("۰۱۲۳۴۵۶۷۸۹")...)
	devanagariNumber     = numeral.Positional(runes("०१२३४५६७८९")...)
	bengaliNumber        = numeral.Positional(runes("০১২৩৪৫৬৭৮৯")...)

	lowerLatin = numeral.Bijective(runes("abcdefghijklmnopqrstuvwxyz")...)
	upperLatin = numeral.Bijective(runes("ABCDEFGHIJKLMNOPQRSTUVWXYZ")...)

	// Gojūon order: includes n, excludes wi and we.
	hiraganaAiueo = numeral.Bijective(runes(
		"あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん")...)
	// Iroha order: includes wi and we, excludes n.
	hiraganaIroha = numeral.Bijective(runes(
		"いろはにほへとちりぬるをわかよたれそつねならむうゐのおくやまけふこえてあさきゆめみしゑひもせす")...)
	katakanaAiueo = numeral.Bijective(runes(
		"アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン")...)
	katakanaIroha = numeral.Bijective(runes(
		"イロハニホヘトチリヌルヲワカヨタレソツネナラムウヰノオクヤマケフコエテアサキユメミシヱヒモセス")...)

	koreanJamo     = numeral.Bijective(runes("ㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎ")...)
	koreanSyllable = numeral.Bijective(runes("가나다라마바사아자차카타파하")...)
	bengaliLetter  = numeral.Bijective(runes("কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহ")...)

	symbol = numeral.Symbolic(runes("*†‡§¶‖")...)

	circledNumber = numeral.ZeroableFixed(runes(
		"⓪①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳" +
			"㉑㉒㉓㉔㉕㉖㉗㉘㉙㉚㉛㉜㉝㉞㉟" +
			"㊱㊲㊳㊴㊵㊶㊷㊸㊹㊺㊻㊼㊽㊾㊿")...)
	doubleCircledNumber = numeral.NonZeroableFixed(runes("⓵⓶⓷⓸⓹⓺⓻⓼⓽⓾")...)

	lowerRoman = numeral.Additive(
		wn("m̅", 1000000),
		wn("d̅", 500000),
		wn("c̅", 100000),
		wn("l̅", 50000),
		wn("x̅", 10000),
		wn("v̅", 5000),
		wn("i̅v̅", 4000),
		wn("m", 1000),
		wn("cm", 900),
		wn("d", 500),
		wn("cd", 400),
		wn("c", 100),
		wn("xc", 90),
		wn("l", 50),
		wn("xl", 40),
		wn("x", 10),
		wn("ix", 9),
		wn("v", 5),
		wn("iv", 4),
		wn("i", 1),
		wn("n", 0),
	)
	upperRoman = numeral.Additive(
		wn("M̅", 1000000),
		wn("D̅", 500000),
		wn("C̅", 100000),
		wn("L̅", 50000),
		wn("X̅", 10000),
		wn("V̅", 5000),
		wn("I̅V̅", 4000),
		wn("M", 1000),
		wn("CM", 900),
		wn("D", 500),
		wn("CD", 400),
		wn("C", 100),
		wn("XC", 90),
		wn("L", 50),
		wn("XL", 40),
		wn("X", 10),
		wn("IX", 9),
		wn("V", 5),
		wn("IV", 4),
		wn("I", 1),
		wn("N", 0),
	)

	lowerGreek = numeral.Additive(
		wn("͵θ", 9000),
		wn("͵η", 8000),
		wn("͵ζ", 7000),
		wn("͵ϛ", 6000),
		wn("͵ε", 5000),
		wn("͵δ", 4000),
		wn("͵γ", 3000),
		wn("͵β", 2000),
		wn("͵α", 1000),
		wn("ϡ", 900),
		wn("ω", 800),
		wn("ψ", 700),
		wn("χ", 600),
		wn("φ", 500),
		wn("υ", 400),
		wn("τ", 300),
		wn("σ", 200),
		wn("ρ", 100),
		wn("ϟ", 90),
		wn("π", 80),
		wn("ο", 70),
		wn("ξ", 60),
		wn("ν", 50),
		wn("μ", 40),
		wn("λ", 30),
		wn("κ", 20),
		wn("ι", 10),
		wn("θ", 9),
		wn("η", 8),
		wn("ζ", 7),
		wn("ϛ", 6),
		wn("ε", 5),
		wn("δ", 4),
		wn("γ", 3),
		wn("β", 2),
		wn("α", 1),
		wn("𐆊", 0),
	)
	upperGreek = numeral.Additive(
		wn("͵Θ", 9000),
		wn("͵Η", 8000),
		wn("͵Ζ", 7000),
		wn("͵Ϛ", 6000),
		wn("͵Ε", 5000),
		wn("͵Δ", 4000),
		wn("͵Γ", 3000),
		wn("͵Β", 2000),
		wn("͵Α", 1000),
		wn("Ϡ", 900),
		wn("Ω", 800),
		wn("Ψ", 700),
		wn("Χ", 600),
		wn("Φ", 500),
		wn("Υ", 400),
		wn("Τ", 300),
		wn("Σ", 200),
		wn("Ρ", 100),
		wn("Ϟ", 90),
		wn("Π", 80),
		wn("Ο", 70),
		wn("Ξ", 60),
		wn("Ν", 50),
		wn("Μ", 40),
		wn("Λ", 30),
		wn("Κ", 20),
		wn("Ι", 10),
		wn("Θ", 9),
		wn("Η", 8),
		wn("Ζ", 7),
		wn("Ϛ", 6),
		wn("Ε", 5),
		wn("Δ", 4),
		wn("Γ", 3),
		wn("Β", 2),
		wn("Α", 1),
		wn("𐆊", 0),
	)

	// Teens get dedicated numerals: 15 and 16 avoid spelling divine names,
	// and the 17..19 entries keep rendering consistent with them.
	hebrew = numeral.Additive(
		wn("ת", 400),
		wn("ש", 300),
		wn("ר", 200),
		wn("ק", 100),
		wn("צ", 90),
		wn("פ", 80),
		wn("ע", 70),
		wn("ס", 60),
		wn("נ", 50),
		wn("מ", 40),
		wn("ל", 30),
		wn("כ", 20),
		wn("יט", 19),
		wn("יח", 18),
		wn("יז", 17),
		wn("טז", 16),
		wn("טו", 15),
		wn("י", 10),
		wn("ט", 9),
		wn("ח", 8),
		wn("ז", 7),
		wn("ו", 6),
		wn("ה", 5),
		wn("ד", 4),
		wn("ג", 3),
		wn("ב", 2),
		wn("א", 1),
		wn("-", 0),
	)

	lowerSimplifiedChinese  = numeral.Chinese(chinese.Simple, chinese.Lower)
	upperSimplifiedChinese  = numeral.Chinese(chinese.Simple, chinese.Upper)
	lowerTraditionalChinese = numeral.Chinese(chinese.Traditional, chinese.Lower)
	upperTraditionalChinese = numeral.Chinese(chinese.Traditional, chinese.Upper)
)
