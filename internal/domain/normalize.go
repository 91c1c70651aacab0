package domain

import (
	"strconv"
	"strings"
)

// Query is one round of available letters and target word length.
type Query struct {
	Letters string
	Length  int
}

// NormalizeLetters prepares raw prompt input for a query:
//   - strips any trailing run of line-ending characters ("\n", "\r\n", "\r")
//   - keeps at most maxLetters characters (no cap when maxLetters <= 0)
//   - converts to lowercase
func NormalizeLetters(raw string, maxLetters int) string {
	raw = strings.TrimRight(raw, "\r\n")
	if maxLetters > 0 {
		n := 0
		for i := range raw {
			if n == maxLetters {
				raw = raw[:i]
				break
			}
			n++
		}
	}
	return strings.ToLower(raw)
}

// ParseLength reads a target word length from the start of raw, the way a
// lenient integer parse does: surrounding whitespace and an optional sign are
// accepted, then the leading digits are used and the rest is ignored
// ("5abc" and "5.9" give 5). A "0x" prefix switches to hexadecimal.
// Input without leading digits yields -1, which matches no word.
func ParseLength(raw string) (int, bool) {
	s := strings.TrimSpace(raw)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return -1, false
	}

	n, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		// Out of range: no word is that long.
		return -1, false
	}
	if neg {
		n = -n
	}
	return int(n), true
}

func isDigit(c byte, base int) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case base == 16:
		return 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
	default:
		return false
	}
}

// NormalizeWord prepares a dictionary word for storage: trims surrounding
// whitespace and converts to lowercase. Inner characters are preserved.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
