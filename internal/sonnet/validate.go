// Package sonnet validates rhyme structure, scores sonnets and runs the full
// analysis pipeline.
package sonnet

import (
	"github.com/verte-zerg/soneto/internal/elision"
	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/text"
)

// Accepted tercet skeletons. Only the equality shape matters, not the letters.
var tercetSkeletons = [][]string{
	{"C", "D", "C", "D", "C", "D"},
	{"C", "D", "E", "C", "D", "E"},
	{"C", "D", "C", "C", "D", "C"},
}

// Validate reports whether labels describe a well-formed sonnet: 14 non-blank
// labels, no word rhyming with itself, ABBA ABBA quatrains and one of the
// accepted tercet skeletons.
func Validate(labels, verses []string) bool {
	if len(labels) != model.VerseCount || anyBlank(labels) {
		return false
	}
	if SelfRhyme(labels, verses) {
		return false
	}
	return QuatrainsCoherent(labels) && TercetsCoherent(labels)
}

// SelfRhyme reports whether two verses sharing a label end in the same word,
// ignoring case and diacritics.
func SelfRhyme(labels, verses []string) bool {
	words := make([]string, len(labels))
	for i := range labels {
		if i < len(verses) {
			words[i] = text.Fold(text.LastWord(elision.StripMarkers(verses[i])))
		}
	}
	for i := 0; i < len(labels); i++ {
		if labels[i] == "" || words[i] == "" {
			continue
		}
		for j := i + 1; j < len(labels); j++ {
			if labels[i] == labels[j] && words[i] == words[j] {
				return true
			}
		}
	}
	return false
}

// Ring reports whether a four-label block closes on itself (ABBA).
func Ring(block []string) bool {
	return len(block) == 4 && block[0] == block[3] && block[1] == block[2]
}

// QuatrainsCoherent reports whether verses 1–8 form two identical ABBA rings.
func QuatrainsCoherent(labels []string) bool {
	if len(labels) < 8 || anyBlank(labels[:8]) {
		return false
	}
	q := labels[:8]
	for i := 0; i < 4; i++ {
		if q[i] != q[i+4] {
			return false
		}
	}
	return Ring(q[:4])
}

// TercetsCoherent reports whether verses 9–14 have the shape of an accepted
// tercet skeleton.
func TercetsCoherent(labels []string) bool {
	if len(labels) < model.VerseCount || anyBlank(labels[8:14]) {
		return false
	}
	t := labels[8:14]
	for _, skeleton := range tercetSkeletons {
		if sameShape(t, skeleton) {
			return true
		}
	}
	return false
}

// TercetsAlternate is the looser tercet test used for partial credit: 9==11
// and 12==14, or 9==12, 10==13 and 11==14.
func TercetsAlternate(labels []string) bool {
	if len(labels) < model.VerseCount || anyBlank(labels[8:14]) {
		return false
	}
	t := labels[8:14]
	if t[0] == t[2] && t[3] == t[5] {
		return true
	}
	return t[0] == t[3] && t[1] == t[4] && t[2] == t[5]
}

func sameShape(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if (a[i] == a[j]) != (b[i] == b[j]) {
				return false
			}
		}
	}
	return true
}

func anyBlank(labels []string) bool {
	for _, l := range labels {
		if l == "" {
			return true
		}
	}
	return false
}
