package domain

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Kanu", want: "kanu"},
		{name: "acute", input: "café", want: "cafe"},
		{name: "grave", input: "Numèè", want: "numee"},
		{name: "circumflex and diaeresis", input: "Mââcè", want: "maace"},
		{name: "mixed accents", input: "Wêê ölê", want: "wee ole"},
		{name: "already folded", input: "bonjour", want: "bonjour"},
		{name: "empty", input: "", want: ""},
		{name: "uppercase accented", input: "É", want: "e"},
		{name: "apostrophe preserved", input: "n'dè", want: "n'de"},
		{name: "hyphen preserved", input: "kwé-mwâ", want: "kwe-mwa"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFold_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Numèè", "Mââcè", "KWÉ", "déjà-vu", "plain", ""}
	for _, s := range inputs {
		once := Fold(s)
		if twice := Fold(once); twice != once {
			t.Errorf("Fold not idempotent for %q: Fold(%q) = %q", s, once, twice)
		}
	}
}

func TestFold_AccentVariantsEqual(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"é", "e"},
		{"É", "e"},
		{"è", "e"},
		{"â", "a"},
		{"ö", "o"},
		{"Numèè", "numee"},
	}
	for _, p := range pairs {
		if Fold(p[0]) != Fold(p[1]) {
			t.Errorf("Fold(%q) = %q, Fold(%q) = %q; want equal", p[0], Fold(p[0]), p[1], Fold(p[1]))
		}
	}

	// Distinct base letters must stay distinct.
	if Fold("É") == Fold("a") {
		t.Error("Fold collapsed distinct base letters")
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  kanu  ", want: "kanu"},
		{name: "lowercase", input: "Kanu Koko", want: "kanu koko"},
		{name: "compress spaces", input: "kanu   koko", want: "kanu koko"},
		{name: "diacritics preserved", input: "Numèè", want: "numèè"},
		{name: "empty", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
