package rhyme

import (
	"strings"

	"github.com/verte-zerg/soneto/internal/text"
)

// Kind tells how two rhyme keys rhyme.
type Kind int

const (
	// KindNone means the keys do not rhyme.
	KindNone Kind = iota
	// KindConsonant means the keys share their final sounds.
	KindConsonant
	// KindAssonant means only the final vowels agree.
	KindAssonant
)

// String returns the Spanish name of the rhyme kind.
func (k Kind) String() string {
	switch k {
	case KindConsonant:
		return "consonante"
	case KindAssonant:
		return "asonante"
	default:
		return "ninguna"
	}
}

// Classify compares two rhyme keys after folding case and diacritics. Empty
// keys never rhyme.
func Classify(a, b string) Kind {
	na := []rune(text.Fold(a))
	nb := []rune(text.Fold(b))
	if len(na) == 0 || len(nb) == 0 {
		return KindNone
	}
	if string(na) == string(nb) {
		return KindConsonant
	}
	if len(na) >= 2 && len(nb) >= 2 && string(na[len(na)-2:]) == string(nb[len(nb)-2:]) {
		return KindConsonant
	}

	va := vowelsOf(na)
	vb := vowelsOf(nb)
	if len(va) == 0 || len(vb) == 0 {
		return KindNone
	}
	if len(va) == 1 && len(vb) == 1 {
		if va[0] == vb[0] {
			return KindAssonant
		}
		return KindNone
	}
	if string(tail(va, 2)) == string(tail(vb, 2)) {
		return KindAssonant
	}
	return KindNone
}

// Match reports whether two rhyme keys rhyme in any way.
func Match(a, b string) bool {
	return Classify(a, b) != KindNone
}

func vowelsOf(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for _, c := range r {
		if strings.ContainsRune("aeiou", c) {
			out = append(out, c)
		}
	}
	return out
}

func tail(r []rune, n int) []rune {
	if len(r) <= n {
		return r
	}
	return r[len(r)-n:]
}

// Signature holds the folded forms an index needs to look up candidate
// rhymes. For non-empty keys, Match(a, b) holds exactly when the Endings are
// equal or the Vowels are equal and non-empty.
type Signature struct {
	Folded string
	// Ending is the last two runes of Folded, or all of it when shorter.
	Ending string
	// Vowels is the last one or two vowels of Folded.
	Vowels string
}

// SignatureOf computes the lookup signature of a rhyme key.
func SignatureOf(key string) Signature {
	folded := []rune(text.Fold(key))
	return Signature{
		Folded: string(folded),
		Ending: string(tail(folded, 2)),
		Vowels: string(tail(vowelsOf(folded), 2)),
	}
}
