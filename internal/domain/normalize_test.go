package domain

import "testing"

func TestNormalizeLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		max  int
		want string
	}{
		{name: "crlf stripped", raw: "tac\r\n", max: 12, want: "tac"},
		{name: "lf stripped", raw: "tac\n", max: 12, want: "tac"},
		{name: "cr stripped", raw: "tac\r", max: 12, want: "tac"},
		{name: "no line ending", raw: "tac", max: 12, want: "tac"},
		{name: "several line endings", raw: "tac\r\n\r\n", max: 12, want: "tac"},
		{name: "lowercased", raw: "TaC\n", max: 12, want: "tac"},
		{name: "truncated after trim", raw: "ABCDEFGHIJKLMNOP\r\n", max: 12, want: "abcdefghijkl"},
		{name: "exactly max", raw: "abcdefghijkl", max: 12, want: "abcdefghijkl"},
		{name: "truncation counts characters", raw: "ééééé", max: 3, want: "ééé"},
		{name: "no cap", raw: "abcdefghijklmnop", max: 0, want: "abcdefghijklmnop"},
		{name: "empty", raw: "\r\n", max: 12, want: ""},
		{name: "inner spaces kept", raw: "a b\n", max: 12, want: "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeLetters(tt.raw, tt.max); got != tt.want {
				t.Errorf("NormalizeLetters(%q, %d) = %q, want %q", tt.raw, tt.max, got, tt.want)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: "3", want: 3, wantOK: true},
		{raw: " 5 \r\n", want: 5, wantOK: true},
		{raw: "0", want: 0, wantOK: true},
		{raw: "-2", want: -2, wantOK: true},
		{raw: "", want: -1, wantOK: false},
		{raw: "abc", want: -1, wantOK: false},
		{raw: "3.5", want: 3, wantOK: true},
		{raw: "5abc", want: 5, wantOK: true},
		{raw: "4 letters", want: 4, wantOK: true},
		{raw: "+4", want: 4, wantOK: true},
		{raw: "-0", want: 0, wantOK: true},
		{raw: "007", want: 7, wantOK: true},
		{raw: "0x1A", want: 26, wantOK: true},
		{raw: "0x", want: -1, wantOK: false},
		{raw: "+", want: -1, wantOK: false},
		{raw: "- 3", want: -1, wantOK: false},
		{raw: "abc5", want: -1, wantOK: false},
		{raw: "99999999999999999999", want: -1, wantOK: false},
	}
	for _, tt := range tests {
		t.Run("raw_"+tt.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLength(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLength(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "  Hello  ", want: "hello"},
		{input: "ABANDON", want: "abandon"},
		{input: "Café", want: "café"},
		{input: "\t", want: ""},
		{input: "well-known", want: "well-known"},
	}
	for _, tt := range tests {
		if got := NormalizeWord(tt.input); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
