// Package syllable splits Spanish words into orthographic syllables.
package syllable

import (
	"strings"
	"unicode"
)

const (
	vowels         = "aeiouáéíóúü"
	strongVowels   = "aeoáéó"
	weakVowels     = "iuíúü"
	accentedVowels = "áéíóú"
)

// IsVowel reports whether r is a Spanish vowel, accented forms and ü included.
func IsVowel(r rune) bool {
	return strings.ContainsRune(vowels, unicode.ToLower(r))
}

// IsStrong reports whether r is an open vowel (a, e, o, accented or not).
func IsStrong(r rune) bool {
	return strings.ContainsRune(strongVowels, unicode.ToLower(r))
}

// IsWeak reports whether r is a closed vowel (i, u, í, ú, ü).
func IsWeak(r rune) bool {
	return strings.ContainsRune(weakVowels, unicode.ToLower(r))
}

// IsAccented reports whether r carries an acute accent.
func IsAccented(r rune) bool {
	return strings.ContainsRune(accentedVowels, unicode.ToLower(r))
}

// IsHiatus reports whether two adjacent vowels belong to separate syllables:
// both are strong, or either one carries an accent mark.
func IsHiatus(a, b rune) bool {
	if IsStrong(a) && IsStrong(b) {
		return true
	}
	return IsAccented(a) || IsAccented(b)
}

// IsDiphthong reports whether two adjacent vowels stay in one syllable.
func IsDiphthong(a, b rune) bool {
	return IsVowel(a) && IsVowel(b) && !IsHiatus(a, b)
}
