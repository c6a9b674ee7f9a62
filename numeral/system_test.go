package numeral

import (
	"testing"

	"github.com/Neumenon/numeral/chinese"
)

func TestVerify_WellFormed(t *testing.T) {
	systems := map[string]System{
		"positional":    decimal(),
		"bijective":     Bijective("a"),
		"symbolic":      Symbolic("*"),
		"fixed":         ZeroableFixed("0"),
		"fixed-nonzero": NonZeroableFixed("1"),
		"additive":      roman(),
		"chinese":       Chinese(chinese.Traditional, chinese.Upper),
	}
	for name, sys := range systems {
		if err := sys.Verify(); err != nil {
			t.Errorf("%s: Verify failed: %v", name, err)
		}
	}
}

func TestVerify_Malformed(t *testing.T) {
	tests := []struct {
		name string
		sys  System
	}{
		{"duplicate digits", Positional("0", "1", "0")},
		{"empty symbol", Bijective("a", "")},
		{"duplicate symbolic", Symbolic("*", "*")},
		{"increasing weights", Additive(Weighted{"i", 1}, Weighted{"x", 10}, Weighted{"j", 1})},
		{"equal weights", Additive(Weighted{"a", 5}, Weighted{"b", 5}, Weighted{"i", 1})},
		{"zero weight not last", Additive(Weighted{"n", 0}, Weighted{"i", 1})},
		{"no unit numeral", Additive(Weighted{"x", 10}, Weighted{"v", 5})},
		{"empty additive symbol", Additive(Weighted{"", 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sys.Verify(); err == nil {
				t.Error("Verify accepted a malformed definition")
			}
		})
	}
}

func TestConstructors_RejectEmptyTables(t *testing.T) {
	tests := map[string]func(){
		"positional one symbol": func() { Positional("0") },
		"bijective empty":       func() { Bijective() },
		"symbolic empty":        func() { Symbolic() },
		"additive empty":        func() { Additive() },
		"fixed empty":           func() { ZeroableFixed() },
		"fixed-nonzero empty":   func() { NonZeroableFixed() },
	}
	for name, construct := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("constructor accepted an unusable table")
				}
			}()
			construct()
		})
	}
}

func TestAccessorsCopyTables(t *testing.T) {
	sys := Positional("0", "1")
	syms := sys.Symbols()
	syms[0] = "corrupted"
	if got, _ := sys.Render(0); got != "0" {
		t.Errorf("mutating the Symbols copy leaked into the system: Render(0) = %q", got)
	}

	add := Additive(Weighted{"i", 1})
	add.Numerals()[0].Symbol = "corrupted"
	if got, _ := add.Render(1); got != "i" {
		t.Errorf("mutating the Numerals copy leaked into the system: Render(1) = %q", got)
	}
}
