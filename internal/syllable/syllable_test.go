package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := map[string][]string{
		"amante":    {"a", "man", "te"},
		"instante":  {"in", "stan", "te"},
		"constante": {"con", "stan", "te"},
		"diamante":  {"dia", "man", "te"},
		"luna":      {"lu", "na"},
		"altura":    {"al", "tu", "ra"},
		"ternura":   {"ter", "nu", "ra"},
		"destino":   {"des", "ti", "no"},
		"juventud":  {"ju", "ven", "tud"},
		"inquietud": {"in", "quie", "tud"},
		"plenitud":  {"ple", "ni", "tud"},
		"leía":      {"le", "í", "a"},
		"poeta":     {"po", "e", "ta"},
		"ciudad":    {"ciu", "dad"},
		"hablo":     {"ha", "blo"},
		"perro":     {"pe", "rro"},
		"noche":     {"no", "che"},
		"calle":     {"ca", "lle"},
		"vals":      {"vals"},
		"del":       {"del"},
		"Casa":      {"ca", "sa"},
		"pfft":      {"pfft"},
		"la":        {"la"},
		"y":         {"y"},
	}
	for word, want := range cases {
		assert.Equal(t, want, Split(word), "Split(%q)", word)
	}
	assert.Nil(t, Split(""))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count("amante"))
	assert.Equal(t, 1, Count("sol"))
	assert.Equal(t, 0, Count("..."))
	assert.Equal(t, 1, Count("y"))
	assert.Equal(t, 1, Count("brr"))
	assert.Equal(t, 0, Count(""))
}

func TestIsInseparable(t *testing.T) {
	assert.True(t, IsInseparable('t', 'r'))
	assert.True(t, IsInseparable('l', 'l'))
	assert.False(t, IsInseparable('n', 't'))
	assert.False(t, IsInseparable('s', 't'))
}
