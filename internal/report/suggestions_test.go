package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/soneto/internal/model"
)

var sample = []model.Suggestion{
	{Word: "diamante", Key: "e", Kind: "consonante", Source: "builtin"},
	{Word: "mar", Key: "ar", Kind: "asonante", Source: "user"},
}

func TestWriteSuggestionsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSuggestions(&buf, sample, FormatText))
	assert.Equal(t,
		"Palabra  Rima       Origen\n"+
			"diamante consonante builtin\n"+
			"mar      asonante   user\n",
		buf.String())
}

func TestWriteSuggestionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSuggestions(&buf, nil, FormatText))
	assert.Equal(t, "Sin sugerencias\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSuggestions(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteSuggestionsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSuggestions(&buf, sample, FormatJSON))
	var decoded []model.Suggestion
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)
}

func TestWriteSuggestionsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSuggestions(&buf, sample[:1], FormatYAML))
	assert.Equal(t, "- word: diamante\n  key: e\n  kind: consonante\n  source: builtin\n", buf.String())
}

func TestWriteSuggestionsUnknownFormat(t *testing.T) {
	require.Error(t, WriteSuggestions(&bytes.Buffer{}, sample, "csv"))
}
