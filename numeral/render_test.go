package numeral

import (
	"errors"
	"math"
	"testing"

	"github.com/Neumenon/numeral/chinese"
)

func sampleSystems() map[string]System {
	return map[string]System{
		"positional": Positional("0", "1", "2", "3", "4"),
		"bijective":  Bijective("a", "b", "c"),
		"additive":   roman(),
		"additive-no-zero": Additive(
			Weighted{"x", 10},
			Weighted{"i", 1},
		),
		"symbolic":      Symbolic("*", "†", "‡"),
		"fixed":         ZeroableFixed(fixedSymbols(8)...),
		"fixed-nonzero": NonZeroableFixed(fixedSymbols(8)...),
		"chinese":       Chinese(chinese.Simple, chinese.Lower),
	}
}

// Repetition-based kinds produce output linear in n, so only the O(log n)
// kinds get probed near the top of uint64.
func sampleValues(k Kind) []uint64 {
	small := []uint64{0, 1, 2, 3, 7, 8, 9, 10, 100, 5000}
	switch k {
	case KindAdditive, KindSymbolic:
		return small
	default:
		return append(small, math.MaxUint64/2, math.MaxUint64)
	}
}

// Validate succeeds exactly when Render succeeds, with identical error
// codes on failure.
func TestValidateRenderAgreement(t *testing.T) {
	for name, sys := range sampleSystems() {
		t.Run(name, func(t *testing.T) {
			for _, n := range sampleValues(sys.Kind()) {
				_, vErr := sys.Validate(n)
				out, rErr := sys.Render(n)

				if (vErr == nil) != (rErr == nil) {
					t.Fatalf("n=%d: Validate err %v, Render err %v", n, vErr, rErr)
				}
				if vErr == nil {
					if out == "" {
						t.Fatalf("n=%d: rendered empty string", n)
					}
					continue
				}
				var ve, re *RepresentationError
				if !errors.As(vErr, &ve) || !errors.As(rErr, &re) {
					t.Fatalf("n=%d: untyped errors %v / %v", n, vErr, rErr)
				}
				if ve.Code != re.Code {
					t.Fatalf("n=%d: Validate code %s, Render code %s", n, ve.Code, re.Code)
				}
			}
		})
	}
}

func TestRenderDeterminism(t *testing.T) {
	for name, sys := range sampleSystems() {
		t.Run(name, func(t *testing.T) {
			for _, n := range sampleValues(sys.Kind()) {
				first, err1 := sys.Render(n)
				second, err2 := sys.Render(n)
				if (err1 == nil) != (err2 == nil) || first != second {
					t.Fatalf("n=%d: %q/%v then %q/%v", n, first, err1, second, err2)
				}
			}
		})
	}
}

func TestRepresented(t *testing.T) {
	sys := decimal()
	r, err := sys.Validate(1234)
	if err != nil {
		t.Fatalf("Validate(1234) failed: %v", err)
	}
	if r.Value() != 1234 {
		t.Errorf("Value() = %d, want 1234", r.Value())
	}
	if r.System().Kind() != KindPositional {
		t.Errorf("System().Kind() = %s, want positional", r.System().Kind())
	}
	if got := r.String(); got != "1234" {
		t.Errorf("String() = %q, want %q", got, "1234")
	}
}

func TestRepresentationError(t *testing.T) {
	_, err := Bijective("a").Render(0)
	if !IsZero(err) || IsTooLarge(err) {
		t.Fatalf("want CodeZero only, got %v", err)
	}

	_, err = ZeroableFixed("a", "b").Render(2)
	if !IsTooLarge(err) || IsZero(err) {
		t.Fatalf("want CodeTooLarge only, got %v", err)
	}

	var re *RepresentationError
	if !errors.As(err, &re) {
		t.Fatalf("error is not a *RepresentationError: %v", err)
	}
	if re.N != 2 {
		t.Errorf("N = %d, want 2", re.N)
	}
	if re.Error() == "" || re.Code.String() != "too_large" {
		t.Errorf("unexpected error text %q / code %q", re.Error(), re.Code.String())
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindPositional:       "positional",
		KindBijective:        "bijective",
		KindAdditive:         "additive",
		KindSymbolic:         "symbolic",
		KindZeroableFixed:    "fixed",
		KindNonZeroableFixed: "fixed-nonzero",
		KindChinese:          "chinese",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
