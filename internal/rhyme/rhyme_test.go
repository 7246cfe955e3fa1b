package rhyme

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	cases := map[string]string{
		"la luna toca la casa amante": "e",
		"y late mi corazón.":          "ón",
		"a la sombra del árbol":       "árbol",
		"toda la poesía":              "ía",
		"¡Pingüino!":                  "o",
		"la virtud":                   "ud",
		"brr":                         "brr",
		"la casa...":                  "a",
		"la ca*sa":                    "a",
		"":                            "",
		"   ":                         "",
	}
	for verse, want := range cases {
		assert.Equal(t, want, Extract(verse), "Extract(%q)", verse)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		a, b string
		want Kind
	}{
		{"e", "e", KindConsonant},
		{"ón", "on", KindConsonant},
		{"árbol", "ol", KindConsonant},
		{"ía", "ía", KindConsonant},
		{"ón", "o", KindAssonant},
		{"ágrima", "ía", KindAssonant},
		{"ía", "a", KindNone},
		{"e", "a", KindNone},
		{"o", "ud", KindNone},
		{"", "", KindNone},
		{"", "a", KindNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.a, tc.b), "Classify(%q, %q)", tc.a, tc.b)
		assert.Equal(t, tc.want != KindNone, Match(tc.a, tc.b))
	}
	assert.Equal(t, "consonante", KindConsonant.String())
	assert.Equal(t, "asonante", KindAssonant.String())
	assert.Equal(t, "ninguna", KindNone.String())
}

func TestPattern(t *testing.T) {
	endings := []string{
		"amante", "altura", "locura", "instante",
		"constante", "ternura", "dulzura", "diamante",
		"camino", "juventud", "destino", "inquietud", "divino", "plenitud",
	}
	verses := make([]string, len(endings))
	for i, e := range endings {
		verses[i] = "la luna toca la casa " + e
	}
	got := Pattern(verses)
	assert.Equal(t, strings.Split("A B B A A B B A C D C D C D", " "), got)
	assert.Equal(t, got, Pattern(verses), "labels must be stable across runs")
}

func TestPatternBlankVerses(t *testing.T) {
	got := Pattern([]string{"", "el sol", "  ", "la flor"})
	assert.Equal(t, []string{"", "A", "", "A"}, got)
}

func TestClassifySymmetric(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(97)
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	keyAlphabet := []rune("aeiouáéíóúbcdlmnrst")
	genKey := gen.SliceOf(gen.IntRange(0, len(keyAlphabet)-1)).Map(func(idx []int) string {
		if len(idx) > 6 {
			idx = idx[:6]
		}
		var b strings.Builder
		for _, i := range idx {
			b.WriteRune(keyAlphabet[i])
		}
		return b.String()
	})

	properties.Property("Match is symmetric", prop.ForAll(
		func(a, b string) bool {
			return Match(a, b) == Match(b, a) && Classify(a, b) == Classify(b, a)
		},
		genKey, genKey,
	))
	properties.Property("a non-empty key rhymes with itself", prop.ForAll(
		func(a string) bool {
			return a == "" || Classify(a, a) == KindConsonant
		},
		genKey,
	))
	properties.Property("signature lookup agrees with Match", prop.ForAll(
		func(a, b string) bool {
			if a == "" || b == "" {
				return !Match(a, b)
			}
			sa, sb := SignatureOf(a), SignatureOf(b)
			indexed := sa.Ending == sb.Ending || (sa.Vowels != "" && sa.Vowels == sb.Vowels)
			return indexed == Match(a, b)
		},
		genKey, genKey,
	))
	properties.TestingRun(t)
}

func TestSignatureOf(t *testing.T) {
	assert.Equal(t, Signature{Folded: "ante", Ending: "te", Vowels: "ae"}, SignatureOf("ante"))
	assert.Equal(t, Signature{Folded: "i", Ending: "i", Vowels: "i"}, SignatureOf("í"))
	assert.Equal(t, Signature{}, SignatureOf(""))
}
