package numeral

import "testing"

func TestSymbolic_FootnoteCycle(t *testing.T) {
	sys := Symbolic("*", "†", "‡", "§", "¶", "‖")
	tests := []struct {
		n    uint64
		want string
	}{
		{1, "*"},
		{2, "†"},
		{3, "‡"},
		{4, "§"},
		{5, "¶"},
		{6, "‖"},
		{7, "**"},
		{8, "††"},
		{12, "‖‖"},
		{13, "***"},
		{19, "****"},
	}
	for _, tt := range tests {
		got, err := sys.Render(tt.n)
		if err != nil {
			t.Fatalf("Render(%d) failed: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Render(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSymbolic_ThreeSymbols(t *testing.T) {
	sys := Symbolic("A", "B", "C")
	want := []string{"A", "B", "C", "AA", "BB", "CC", "AAA"}
	for i, w := range want {
		n := uint64(i + 1)
		got, err := sys.Render(n)
		if err != nil {
			t.Fatalf("Render(%d) failed: %v", n, err)
		}
		if got != w {
			t.Errorf("Render(%d) = %q, want %q", n, got, w)
		}
	}
}

func TestSymbolic_SingleSymbol(t *testing.T) {
	sys := Symbolic("x")
	got, err := sys.Render(4)
	if err != nil {
		t.Fatalf("Render(4) failed: %v", err)
	}
	if got != "xxxx" {
		t.Errorf("Render(4) = %q, want %q", got, "xxxx")
	}
}

func TestSymbolic_RejectsZero(t *testing.T) {
	_, err := Symbolic("x").Render(0)
	if !IsZero(err) {
		t.Fatalf("Render(0) err = %v, want CodeZero", err)
	}
}
