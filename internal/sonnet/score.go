package sonnet

import (
	"math"
	"strings"

	"github.com/verte-zerg/soneto/internal/meter"
	"github.com/verte-zerg/soneto/internal/model"
)

// Point values.
const (
	MetricPoints        = 50
	PartialMetricPoints = 25
	StructureBonus      = 300
	QuatrainBonus       = 150
	TercetBonus         = 150
	CompletionBonus     = 100

	// MaxScore is the best reachable total: every verse at 11 syllables, a
	// valid structure and no blank verse.
	MaxScore = model.VerseCount*MetricPoints + StructureBonus + CompletionBonus
	// DeclaredMaxScore is the advertised maximum. No combination of awards
	// reaches it.
	DeclaredMaxScore = 1400
)

// Score computes the score of a sonnet from its metrical counts and labels.
func Score(counts []int, labels, verses []string) model.ScoreRecord {
	return score(counts, labels, verses, Validate(labels, verses))
}

func score(counts []int, labels, verses []string, valid bool) model.ScoreRecord {
	rec := model.ScoreRecord{
		Metric:      make([]int, len(counts)),
		Max:         MaxScore,
		DeclaredMax: DeclaredMaxScore,
	}
	allMetric := len(counts) == model.VerseCount
	for i, c := range counts {
		rec.Metric[i] = MetricFor(c)
		rec.Total += rec.Metric[i]
		if c != meter.Target {
			allMetric = false
		}
	}

	switch {
	case valid:
		rec.Rhyme = StructureBonus
	default:
		if QuatrainsCoherent(labels) {
			rec.Rhyme += QuatrainBonus
		}
		if TercetsAlternate(labels) {
			rec.Rhyme += TercetBonus
		}
	}
	rec.Total += rec.Rhyme

	filled := !anyBlankVerse(verses)
	if filled {
		rec.Completion = CompletionBonus
		rec.Total += rec.Completion
	}
	rec.Complete = filled && allMetric && valid
	return rec
}

// MetricFor returns the metric points of a single verse.
func MetricFor(count int) int {
	switch {
	case count == meter.Target:
		return MetricPoints
	case count > 0:
		return int(math.Floor(PartialMetricPoints * meter.Closeness(count)))
	default:
		return 0
	}
}

func anyBlankVerse(verses []string) bool {
	if len(verses) != model.VerseCount {
		return true
	}
	for _, v := range verses {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
