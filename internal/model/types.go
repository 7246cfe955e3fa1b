// Package model defines shared data structures.
package model

// VerseCount is the number of verses in a sonnet.
const VerseCount = 14

// Config defines editor and CLI settings after merging flags and file values.
type Config struct {
	Color        bool
	Suggestions  bool
	WordListPath string
	SuggestLimit int
	DebounceMs   int
	Format       string
}

// Overrides holds per-verse elision toggles indexed by syllable gap. The
// analyzer accepts them but the metrical count does not consult them.
type Overrides [][]bool

// For returns the overrides of verse i, or nil.
func (o Overrides) For(i int) []bool {
	if i < 0 || i >= len(o) {
		return nil
	}
	return o[i]
}

// Status classifies one verse for display.
type Status int

const (
	// StatusEmpty marks a blank verse.
	StatusEmpty Status = iota
	// StatusIncorrect marks a verse with no countable syllables.
	StatusIncorrect
	// StatusPartial marks a verse off meter or off the expected rhyme.
	StatusPartial
	// StatusCorrect marks a hendecasyllable carrying the expected rhyme.
	StatusCorrect
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIncorrect:
		return "incorrect"
	case StatusPartial:
		return "partial"
	case StatusCorrect:
		return "correct"
	default:
		return "empty"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// VerseAnalysis is the derived view of one verse.
type VerseAnalysis struct {
	Index           int      `json:"index" yaml:"index"`
	Text            string   `json:"text" yaml:"text"`
	Clean           string   `json:"clean" yaml:"clean"`
	Syllables       []string `json:"syllables" yaml:"syllables"`
	Count           int      `json:"count" yaml:"count"`
	Synalephas      []int    `json:"synalephas,omitempty" yaml:"synalephas,omitempty"`
	Markers         []int    `json:"markers,omitempty" yaml:"markers,omitempty"`
	MarkerSyllables []int    `json:"marker_syllables,omitempty" yaml:"marker_syllables,omitempty"`
	RhymeKey        string   `json:"rhyme_key" yaml:"rhyme_key"`
	Label           string   `json:"label" yaml:"label"`
	Status          Status   `json:"status" yaml:"status"`
}

// ScoreRecord breaks down the score of a sonnet.
type ScoreRecord struct {
	Metric     []int `json:"metric" yaml:"metric"`
	Rhyme      int   `json:"rhyme" yaml:"rhyme"`
	Completion int   `json:"completion" yaml:"completion"`
	Total      int   `json:"total" yaml:"total"`
	// Max is the sum of the largest award of every component.
	Max int `json:"max" yaml:"max"`
	// DeclaredMax is the advertised maximum of 1400. It does not match Max
	// and is kept so the two figures can be shown side by side.
	DeclaredMax int  `json:"declared_max" yaml:"declared_max"`
	Complete    bool `json:"complete" yaml:"complete"`
}

// AnalysisResult is an atomic snapshot of a full analysis.
type AnalysisResult struct {
	Verses         []VerseAnalysis `json:"verses" yaml:"verses"`
	Labels         []string        `json:"labels" yaml:"labels"`
	StructureValid bool            `json:"structure_valid" yaml:"structure_valid"`
	Score          ScoreRecord     `json:"score" yaml:"score"`
}

// Progress returns the total score as a rounded percentage of Max.
func (r AnalysisResult) Progress() int {
	if r.Score.Max <= 0 {
		return 0
	}
	return (r.Score.Total*100 + r.Score.Max/2) / r.Score.Max
}

// DictionaryEntry is one word of the rhyme index with its lookup columns.
type DictionaryEntry struct {
	Word   string
	Key    string
	Folded string
	Ending string
	Vowels string
	Source string
}

// Suggestion is a dictionary word that rhymes with a requested verse.
type Suggestion struct {
	Word   string `json:"word" yaml:"word"`
	Key    string `json:"key" yaml:"key"`
	Kind   string `json:"kind" yaml:"kind"`
	Source string `json:"source" yaml:"source"`
}
