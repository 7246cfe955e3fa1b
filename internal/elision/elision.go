// Package elision resolves synalepha (vowel fusion across words) in a verse.
//
// Two mechanisms exist. Automatic detection only marks candidate fusions for
// display. Manual markers, the '*' glyph typed between two equal vowels,
// are the only way to lower the metrical count.
package elision

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/soneto/internal/syllable"
	"github.com/verte-zerg/soneto/internal/text"
)

// Marker is the glyph a writer inserts to force a synalepha.
const Marker = '*'

// IsValidMarker reports whether the rune at offset pos of verse is a marker
// flanked by equal vowels. Spaces around the marker are ignored and one silent
// "h" may precede the following vowel.
func IsValidMarker(verse string, pos int) bool {
	return isValidMarker([]rune(verse), pos)
}

func isValidMarker(r []rune, pos int) bool {
	if pos <= 0 || pos >= len(r)-1 || r[pos] != Marker {
		return false
	}

	prev := -1
	for i := pos - 1; i >= 0; i-- {
		if unicode.IsSpace(r[i]) {
			continue
		}
		if !syllable.IsVowel(r[i]) {
			return false
		}
		prev = i
		break
	}

	next := -1
	silentH := false
	for i := pos + 1; i < len(r); i++ {
		if unicode.IsSpace(r[i]) {
			continue
		}
		if unicode.ToLower(r[i]) == 'h' && !silentH {
			silentH = true
			continue
		}
		if !syllable.IsVowel(r[i]) {
			return false
		}
		next = i
		break
	}

	if prev < 0 || next < 0 {
		return false
	}
	return text.FoldRune(r[prev]) == text.FoldRune(r[next])
}

// ValidMarkers returns the rune offsets of every valid marker in verse.
func ValidMarkers(verse string) []int {
	r := []rune(verse)
	var out []int
	for i, c := range r {
		if c == Marker && isValidMarker(r, i) {
			out = append(out, i)
		}
	}
	return out
}

// StripMarkers removes every marker glyph, valid or not.
func StripMarkers(verse string) string {
	return strings.ReplaceAll(verse, string(Marker), "")
}

// Detect returns, for each pair of adjacent words where the first ends in a
// vowel and the second starts with one (a leading "h" is transparent), the
// index of the first word's last syllable within the verse.
func Detect(words []string) []int {
	var out []int
	index := 0
	for i, word := range words {
		n := syllable.Count(word)
		if i+1 < len(words) && n > 0 && endsInVowel(word) && startsWithVowel(words[i+1]) {
			out = append(out, index+n-1)
		}
		index += n
	}
	return out
}

// InsertMarker returns a copy of verses where verse index has a marker placed
// right after the vowel nearest to rune offset pos, provided the marker would
// be valid there. Anything else yields an unchanged copy.
func InsertMarker(verses []string, index, pos int) []string {
	out := append([]string(nil), verses...)
	if index < 0 || index >= len(out) {
		return out
	}
	r := []rune(out[index])
	if pos < 0 || pos >= len(r) {
		return out
	}

	prev := -1
	for i := pos; i >= 0; i-- {
		if syllable.IsVowel(r[i]) {
			prev = i
			break
		}
	}
	if prev < 0 || (prev+1 < len(r) && r[prev+1] == Marker) {
		return out
	}

	at := prev + 1
	candidate := make([]rune, 0, len(r)+1)
	candidate = append(candidate, r[:at]...)
	candidate = append(candidate, Marker)
	candidate = append(candidate, r[at:]...)
	if !isValidMarker(candidate, at) {
		return out
	}
	out[index] = string(candidate)
	return out
}

func endsInVowel(word string) bool {
	r := []rune(word)
	return len(r) > 0 && syllable.IsVowel(r[len(r)-1])
}

func startsWithVowel(word string) bool {
	r := []rune(word)
	if len(r) == 0 {
		return false
	}
	if unicode.ToLower(r[0]) == 'h' && len(r) > 1 {
		return syllable.IsVowel(r[1])
	}
	return syllable.IsVowel(r[0])
}
