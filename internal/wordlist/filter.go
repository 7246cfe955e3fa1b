// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"strings"
	"unicode/utf8"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "es":
		return filterSpanish
	default:
		return func(word string) bool { return word != "" }
	}
}

// filterSpanish keeps lowercase words written with the Spanish alphabet.
func filterSpanish(word string) bool {
	if word == "" || !utf8.ValidString(word) {
		return false
	}
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if !strings.ContainsRune("áéíóúüñ", r) {
			return false
		}
	}
	return true
}

// Apply returns the words kept by filter, lowercased and without duplicates.
func Apply(words []string, filter FilterFunc) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if !filter(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
