// Package rhyme extracts rhyme endings and groups verses by rhyme.
package rhyme

import (
	"github.com/verte-zerg/soneto/internal/elision"
	"github.com/verte-zerg/soneto/internal/syllable"
	"github.com/verte-zerg/soneto/internal/text"
)

// Extract returns the rhyme key of a verse: the tail of its last word starting
// at the last accented vowel, or at the last vowel when the word has no
// accent. A word without vowels is returned whole; a blank verse yields "".
func Extract(verse string) string {
	word := text.LastWord(elision.StripMarkers(verse))
	if word == "" {
		return ""
	}
	r := []rune(word)
	for i := len(r) - 1; i >= 0; i-- {
		if syllable.IsAccented(r[i]) {
			return string(r[i:])
		}
	}
	for i := len(r) - 1; i >= 0; i-- {
		if syllable.IsVowel(r[i]) {
			return string(r[i:])
		}
	}
	return word
}

// Keys extracts the rhyme key of every verse.
func Keys(verses []string) []string {
	keys := make([]string, len(verses))
	for i, v := range verses {
		keys[i] = Extract(v)
	}
	return keys
}
