package poem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitleAndBlankLines(t *testing.T) {
	input := "# Al amor\n\nverso uno\r\n  verso dos  \n\n\nverso tres\n"
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Al amor", p.Title)
	require.Len(t, p.Verses, 14)
	assert.Equal(t, []string{"verso uno", "verso dos", "verso tres"}, p.Verses[:3])
	for _, v := range p.Verses[3:] {
		assert.Empty(t, v)
	}
	assert.Zero(t, p.Extra)
}

func TestParseWithoutTitle(t *testing.T) {
	p, err := Parse(strings.NewReader("primero\n# no es titulo\n"))
	require.NoError(t, err)
	assert.Empty(t, p.Title)
	assert.Equal(t, "# no es titulo", p.Verses[1])
}

func TestParseDropsExtraVerses(t *testing.T) {
	var lines []string
	for i := 0; i < 16; i++ {
		lines = append(lines, "verso")
	}
	p, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	assert.Len(t, p.Verses, 14)
	assert.Equal(t, 2, p.Extra)
}

func TestRenderRoundTrip(t *testing.T) {
	p := Poem{Title: "Prueba"}
	for i := 0; i < 14; i++ {
		p.Verses = append(p.Verses, strings.Repeat("v", i+1))
	}
	rendered := Render(p)
	assert.True(t, strings.HasPrefix(rendered, "# Prueba\n\nv\nvv\nvvv\nvvvv\n\nvvvvv\n"))

	back, err := Parse(strings.NewReader(rendered))
	require.NoError(t, err)
	if diff := cmp.Diff(p, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOmitsTrailingEmptyVerses(t *testing.T) {
	p := Poem{Verses: make([]string, 14)}
	p.Verses[0] = "solo"
	assert.Equal(t, "solo\n", Render(p))
	assert.Equal(t, "", Render(Poem{Verses: make([]string, 14)}))
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soneto.txt")
	p := Poem{Title: "T", Verses: make([]string, 14)}
	p.Verses[0] = "uno"
	p.Verses[5] = "seis"
	require.NoError(t, Save(path, p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# T\n\nuno\n-\n-\n-\n\n-\nseis\n", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(p, loaded); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripKeepsGapPositions(t *testing.T) {
	p := Poem{Verses: make([]string, 14)}
	p.Verses[0] = "uno"
	p.Verses[1] = "dos"
	p.Verses[2] = "tres"
	p.Verses[4] = "cinco"

	back, err := Parse(strings.NewReader(Render(p)))
	require.NoError(t, err)
	assert.Empty(t, back.Verses[3])
	assert.Equal(t, "cinco", back.Verses[4])
	assert.Empty(t, back.Verses[5])
}

func TestParseEmptyVerseMarker(t *testing.T) {
	p, err := Parse(strings.NewReader("uno\n  -  \ntres\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"uno", "", "tres"}, p.Verses[:3])
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
