package domain

import "unicode/utf8"

// Dictionary is the ordered word list queries run against.
// It is read-only once loaded; duplicates are kept.
type Dictionary []string

// FindPossibleWords returns the words of exactly length characters that can
// be spelled with rawChars, each available character used at most as many
// times as it occurs in rawChars. The result keeps the order of words and is
// never nil. A negative length matches nothing.
//
// Comparison is case-sensitive: callers normalize rawChars (see
// NormalizeLetters) and the dictionary to the same case.
func FindPossibleWords(words []string, length int, rawChars string) []string {
	return FilterConstructible(FilterByLength(words, length), CountChars(rawChars))
}

// FilterByLength returns the words whose character count equals length.
func FilterByLength(words []string, length int) []string {
	out := make([]string, 0)
	if length < 0 {
		return out
	}
	for _, w := range words {
		// Cheap reject before counting runes: a string never has more runes than bytes.
		if len(w) < length {
			continue
		}
		if utf8.RuneCountInString(w) == length {
			out = append(out, w)
		}
	}
	return out
}

// FilterConstructible returns the words whose letter multiset is contained
// in available.
func FilterConstructible(words []string, available LetterMultiset) []string {
	out := make([]string, 0)
	for _, w := range words {
		if CountChars(w).SubsetOf(available) {
			out = append(out, w)
		}
	}
	return out
}
