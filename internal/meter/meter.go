// Package meter counts metrical syllables in a verse.
package meter

import (
	"math"
	"strings"
	"unicode"

	"github.com/verte-zerg/soneto/internal/elision"
	"github.com/verte-zerg/soneto/internal/syllable"
)

// Target is the syllable count of a hendecasyllable.
const Target = 11

// Result is the metrical analysis of one verse.
type Result struct {
	// Syllables lists the orthographic syllables of every voiced word, in order.
	Syllables []string
	// Count is len(Syllables) minus the number of valid markers.
	Count int
	// Markers holds the rune offsets of valid markers in the raw verse.
	Markers []int
	// MarkerSyllables holds, per valid marker, the index of the syllable it follows.
	MarkerSyllables []int
	// Synalephas holds automatically detected fusion points (syllable indices).
	Synalephas []int
}

type span struct {
	start int
	text  string
}

// Count analyzes verse. Overrides are accepted for interface compatibility
// with callers that track per-gap elision toggles; they do not change the count.
func Count(verse string, overrides []bool) Result {
	_ = overrides
	if strings.TrimSpace(verse) == "" {
		return Result{}
	}

	markers := elision.ValidMarkers(verse)
	clean := elision.StripMarkers(verse)
	if !syllable.HasVowel(clean) {
		return Result{}
	}

	var res Result
	var spans []span
	var words []string
	for _, w := range wordSpans(clean) {
		words = append(words, w.text)
		if !syllable.HasLetter(w.text) {
			continue
		}
		offset := w.start
		for _, s := range syllable.Split(w.text) {
			res.Syllables = append(res.Syllables, s)
			spans = append(spans, span{start: offset, text: s})
			offset += len([]rune(s))
		}
	}

	res.Markers = markers
	res.Count = len(res.Syllables) - len(markers)
	res.MarkerSyllables = markerSyllables(verse, markers, spans)
	res.Synalephas = elision.Detect(words)
	return res
}

// Closeness scores how near count is to Target, from 0 (11 or more away) to 1.
func Closeness(count int) float64 {
	diff := math.Abs(float64(Target-count)) / float64(Target)
	c := 1 - math.Min(diff, 1)
	return math.Max(0, math.Min(1, c))
}

func wordSpans(s string) []span {
	var out []span
	start := -1
	r := []rune(s)
	for i, c := range r {
		if unicode.IsSpace(c) {
			if start >= 0 {
				out = append(out, span{start: start, text: string(r[start:i])})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, span{start: start, text: string(r[start:])})
	}
	return out
}

func markerSyllables(verse string, markers []int, spans []span) []int {
	if len(markers) == 0 {
		return nil
	}
	out := make([]int, 0, len(markers))
	removed := 0
	m := 0
	for i, c := range []rune(verse) {
		if c != elision.Marker {
			continue
		}
		if m < len(markers) && markers[m] == i {
			clean := i - removed
			idx := -1
			for j, sp := range spans {
				if sp.start < clean {
					idx = j
				}
			}
			if idx >= 0 {
				out = append(out, idx)
			}
			m++
		}
		removed++
	}
	return out
}
