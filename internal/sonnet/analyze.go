package sonnet

import (
	"strings"

	"github.com/verte-zerg/soneto/internal/elision"
	"github.com/verte-zerg/soneto/internal/meter"
	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/rhyme"
)

// Scheme is the canonical rhyme scheme ABBA ABBA CDC DCD.
var Scheme = []string{"A", "B", "B", "A", "A", "B", "B", "A", "C", "D", "C", "D", "C", "D"}

// Normalize returns exactly 14 verses: missing ones are blank, extra ones dropped.
func Normalize(verses []string) []string {
	out := make([]string, model.VerseCount)
	copy(out, verses)
	return out
}

// Analyze runs the whole pipeline over a sonnet. It is a pure function of its
// inputs; callers run it again after every edit.
func Analyze(verses []string, overrides model.Overrides) model.AnalysisResult {
	vs := Normalize(verses)
	res := model.AnalysisResult{Verses: make([]model.VerseAnalysis, model.VerseCount)}

	clean := CleanVerses(vs)
	counts := make([]int, model.VerseCount)
	keys := make([]string, model.VerseCount)
	for i, v := range vs {
		m := meter.Count(v, overrides.For(i))
		counts[i] = m.Count
		keys[i] = rhyme.Extract(v)
		res.Verses[i] = model.VerseAnalysis{
			Index:           i + 1,
			Text:            v,
			Clean:           clean[i],
			Syllables:       m.Syllables,
			Count:           m.Count,
			Synalephas:      m.Synalephas,
			Markers:         m.Markers,
			MarkerSyllables: m.MarkerSyllables,
			RhymeKey:        keys[i],
		}
	}

	// Labels depend on verse order, so they are assigned only once every key is known.
	labels := rhyme.Labels(keys)
	res.Labels = labels
	res.StructureValid = Validate(labels, vs)
	res.Score = score(counts, labels, vs, res.StructureValid)

	for i := range res.Verses {
		res.Verses[i].Label = labels[i]
		res.Verses[i].Status = verseStatus(i, vs[i], counts[i], labels[i])
	}
	return res
}

// CleanVerses returns the verses with every marker glyph removed.
func CleanVerses(verses []string) []string {
	out := make([]string, len(verses))
	for i, v := range verses {
		out[i] = strings.TrimSpace(elision.StripMarkers(v))
	}
	return out
}

func verseStatus(i int, verse string, count int, label string) model.Status {
	if strings.TrimSpace(verse) == "" {
		return model.StatusEmpty
	}
	if count == meter.Target && expectedRhyme(i, label) {
		return model.StatusCorrect
	}
	if count > 0 {
		return model.StatusPartial
	}
	return model.StatusIncorrect
}

func expectedRhyme(i int, label string) bool {
	if label == "" {
		return false
	}
	if label == Scheme[i] {
		return true
	}
	return i >= 8 && (label == "C" || label == "D" || label == "E")
}
