// Package text provides Unicode helpers shared by the verse analyzers.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and removes diacritics, so "Canción" becomes "cancion".
func Fold(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// FoldRune folds a single rune the same way Fold does.
func FoldRune(r rune) rune {
	folded := Fold(string(r))
	if folded == "" {
		return r
	}
	out, _ := utf8.DecodeRuneInString(folded)
	return out
}

// Words splits a verse on whitespace.
func Words(s string) []string {
	return strings.Fields(s)
}

// TrimWord strips leading and trailing runes that are neither letters nor digits.
func TrimWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// LastWord returns the lowercased final word of a verse without surrounding
// punctuation. It returns "" for a blank verse.
func LastWord(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(TrimWord(words[len(words)-1]))
}
