package domain

// LetterMultiset maps each character to its number of occurrences.
// Characters that do not occur are absent; a key never maps to zero.
type LetterMultiset map[rune]int

// CountChars builds the letter multiset of s. Characters are Unicode code
// points; the empty string yields an empty, non-nil multiset.
func CountChars(s string) LetterMultiset {
	out := make(LetterMultiset, len(s))
	for _, r := range s {
		out[r]++
	}
	return out
}

// Count returns the number of occurrences of r, or 0 if r is absent.
func (m LetterMultiset) Count(r rune) int {
	return m[r]
}

// Has reports whether r occurs at least once.
func (m LetterMultiset) Has(r rune) bool {
	_, ok := m[r]
	return ok
}

// Total returns the sum of all counts.
func (m LetterMultiset) Total() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// SubsetOf reports whether every character of m occurs in other at least as
// many times. Characters present only in other impose no constraint.
func (m LetterMultiset) SubsetOf(other LetterMultiset) bool {
	for r, n := range m {
		if !other.Has(r) || other.Count(r) < n {
			return false
		}
	}
	return true
}
