package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/soneto/internal/poem"
	"github.com/verte-zerg/soneto/internal/sonnet"
)

var endings = []string{
	"amante", "altura", "locura", "instante",
	"constante", "ternura", "dulzura", "diamante",
	"camino", "juventud", "destino", "inquietud", "divino", "plenitud",
}

func classicDoc() Document {
	p := poem.Poem{Title: "Soneto de prueba"}
	for _, e := range endings {
		p.Verses = append(p.Verses, "la luna toca la casa "+e)
	}
	return NewDocument(p, sonnet.Analyze(p.Verses, nil))
}

func TestWriteText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, classicDoc(), Options{Format: FormatText}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Soneto de prueba\n\n"))
	assert.Contains(t, out, "la luna toca la casa amante")
	assert.Contains(t, out, "ABBA ABBA CDC DCD")
	assert.Contains(t, out, "1100 / 1100 (anunciado 1400)")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "correcto")
	assert.NotContains(t, out, "\x1b[")
}

func TestWriteTextFitsWidth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, classicDoc(), Options{Format: FormatText, Width: 40}))
	lines := strings.Split(buf.String(), "\n")
	// Title, blank line, header and 14 verses.
	for _, line := range lines[2:17] {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 40, "line %q", line)
	}
	assert.Contains(t, lines[3], "…")
	assert.True(t, strings.HasPrefix(lines[3], " 1 "), "line %q", lines[3])
	assert.True(t, strings.HasPrefix(lines[16], "14 "), "line %q", lines[16])
}

func TestWriteTextForcedColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, classicDoc(), Options{Format: FormatText, Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWriteTextNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, classicDoc(), Options{Format: FormatText, Color: true}))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, classicDoc(), Options{Format: FormatJSON}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Soneto de prueba", decoded["title"])
	assert.Equal(t, true, decoded["structure_valid"])
	assert.EqualValues(t, 100, decoded["progress"])
	score := decoded["score"].(map[string]any)
	assert.EqualValues(t, 1100, score["total"])
	assert.EqualValues(t, 1400, score["declared_max"])
	verses := decoded["verses"].([]any)
	require.Len(t, verses, 14)
	first := verses[0].(map[string]any)
	assert.Equal(t, "correct", first["status"])
	assert.Equal(t, "e", first["rhyme_key"])
	assert.NotContains(t, decoded, "dropped_lines")
}

func TestWriteYAML(t *testing.T) {
	doc := classicDoc()
	doc.DroppedLines = 2
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Options{Format: FormatYAML}))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Soneto de prueba", decoded["title"])
	assert.Equal(t, 2, decoded["dropped_lines"])
	assert.Contains(t, decoded, "labels")
	assert.Contains(t, buf.String(), "status: correct")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, classicDoc(), Options{Format: "xml"})
	require.Error(t, err)
	assert.False(t, ValidFormat("xml"))
	assert.True(t, ValidFormat(FormatYAML))
}

func TestScheme(t *testing.T) {
	labels := strings.Split("A B B A A B B A C D C D C", " ")
	labels = append(labels, "")
	assert.Equal(t, "ABBA ABBA CDC DC-", Scheme(labels))
	assert.Equal(t, "", Scheme(nil))
}

func TestHelpListsSections(t *testing.T) {
	help := Help()
	for _, title := range []string{"Estructura", "Esquema de rima", "Métrica", "Sinalefa"} {
		assert.Contains(t, help, title)
	}
	assert.Contains(t, help, sonnet.Info.RhymeScheme)
}
