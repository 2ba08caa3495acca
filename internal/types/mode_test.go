package types

import "testing"

func TestParseInputMode(t *testing.T) {
	cases := map[string]InputMode{
		"":        ModeHangul,
		"Hangul":  ModeHangul,
		"korean":  ModeHangul,
		" latin ": ModeLatin,
		"english": ModeLatin,
	}
	for input, want := range cases {
		got, err := ParseInputMode(input)
		if err != nil {
			t.Fatalf("ParseInputMode(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseInputMode(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseInputMode("kana"); err == nil {
		t.Fatalf("expected error for unsupported mode")
	}
}

func TestToggle(t *testing.T) {
	if ModeHangul.Toggle() != ModeLatin || ModeLatin.Toggle() != ModeHangul {
		t.Fatalf("toggle should switch between hangul and latin")
	}
}
