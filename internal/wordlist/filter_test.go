package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSpanish(t *testing.T) {
	filter := FilterForLang("es")
	for _, word := range []string{"amante", "soñando", "alegría", "pingüino"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass spanish filter", word)
		}
	}
	for _, word := range []string{"", "Amante", "co-op", "don’t", "naïve", "x1"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterDefaultKeepsNonEmpty(t *testing.T) {
	filter := FilterForLang("xx")
	assert.True(t, filter("anything"))
	assert.False(t, filter(""))
}

func TestApplyDedupesAndLowercases(t *testing.T) {
	got := Apply([]string{"Amante", "amante", " vida ", "co-op"}, FilterForLang("es"))
	assert.Equal(t, []string{"amante", "vida"}, got)
}
