package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Chicken Handi", 20, "Chicken Handi"},
		{"Chicken Handi", 10, "Chicken..."},
		{"  padded  ", 0, "padded"},
		{"abcdef", 3, "abc"},
		{"Crème brûlée", 8, "Crème..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestJoinNonEmpty(t *testing.T) {
	if got := joinNonEmpty(" · ", "Chicken", " ", "Japanese"); got != "Chicken · Japanese" {
		t.Fatalf("joinNonEmpty = %q", got)
	}
	if got := joinNonEmpty(", "); got != "" {
		t.Fatalf("joinNonEmpty() = %q, want empty", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp high = %d", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp low = %d", got)
	}
	if got := clamp(2, 0, -1); got != 0 {
		t.Fatalf("clamp empty range = %d", got)
	}
}

func TestNormalizeInstructions(t *testing.T) {
	in := "Preheat oven.\r\n\r\n\r\nMix sauce.\r\n  Bake.  "
	want := "Preheat oven.\n\nMix sauce.\nBake."
	if got := normalizeInstructions(in); got != want {
		t.Fatalf("normalizeInstructions = %q, want %q", got, want)
	}
}
