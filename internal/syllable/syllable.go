package syllable

import (
	"strings"
	"unicode"
)

var inseparable = map[string]struct{}{
	"pr": {}, "br": {}, "tr": {}, "cr": {}, "dr": {}, "gr": {}, "fr": {},
	"pl": {}, "bl": {}, "cl": {}, "gl": {}, "fl": {},
	"ll": {}, "ch": {}, "rr": {},
}

// IsInseparable reports whether two consonants form a cluster that always
// opens a syllable together.
func IsInseparable(a, b rune) bool {
	_, ok := inseparable[string([]rune{a, b})]
	return ok
}

// Split segments a word into syllables. The word is lowercased first and the
// concatenation of the result equals the lowercased word. Words of one or two
// characters come back as a single syllable.
func Split(word string) []string {
	w := []rune(strings.ToLower(word))
	if len(w) == 0 {
		return nil
	}
	if len(w) <= 2 {
		return []string{string(w)}
	}

	var out []string
	start, i := 0, 0
	for i < len(w) {
		if !IsVowel(w[i]) {
			i++
			continue
		}
		end := i + 1
		if end < len(w) && IsVowel(w[end]) {
			if IsHiatus(w[i], w[end]) {
				out = append(out, string(w[start:end]))
				start, i = end, end
				continue
			}
			end++
		}
		next := nextVowel(w, end)
		if next < 0 {
			// Trailing consonants stay with the last nucleus.
			break
		}
		switch next - end {
		case 0:
			// A third vowel after a diphthong stays in the same syllable.
		case 1:
			out = append(out, string(w[start:end]))
			start = end
		default:
			if IsInseparable(w[end], w[end+1]) {
				out = append(out, string(w[start:end]))
				start = end
			} else {
				out = append(out, string(w[start:end+1]))
				start = end + 1
			}
		}
		i = next
	}
	return append(out, string(w[start:]))
}

// Count returns the number of syllables in word. Pure punctuation counts as
// zero; any other token counts at least one, so the conjunction "y" is a
// syllable of its own.
func Count(word string) int {
	if !HasLetter(word) {
		return 0
	}
	return len(Split(word))
}

// HasLetter reports whether s contains a letter or digit.
func HasLetter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// HasVowel reports whether s contains at least one vowel.
func HasVowel(s string) bool {
	for _, r := range s {
		if IsVowel(r) {
			return true
		}
	}
	return false
}

func nextVowel(w []rune, from int) int {
	for j := from; j < len(w); j++ {
		if IsVowel(w[j]) {
			return j
		}
	}
	return -1
}
