package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/soneto/internal/model"
)

func newIndex(t *testing.T, extra ...string) *Index {
	t.Helper()
	idx, err := New(context.Background(), zaptest.NewLogger(t), extra)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, idx.Close()) })
	return idx
}

func words(s []model.Suggestion) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Word
	}
	return out
}

func TestForPrefersLongerSharedEnding(t *testing.T) {
	idx := newIndex(t)
	got, err := idx.For(context.Background(), "la luna toca la casa amante", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"diamante", "brillante", "constante"}, words(got))
	for _, s := range got {
		assert.Equal(t, "consonante", s.Kind)
		assert.Equal(t, SourceBuiltin, s.Source)
	}
}

func TestForSkipsTheWordItself(t *testing.T) {
	idx := newIndex(t)
	got, err := idx.For(context.Background(), "Diamante", 0)
	require.NoError(t, err)
	assert.NotContains(t, words(got), "diamante")
	assert.Len(t, got, DefaultLimit)
}

func TestForConsonantBeforeAssonant(t *testing.T) {
	idx := newIndex(t, "canción", "co-op")
	got, err := idx.For(context.Background(), "y late mi corazón", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.Suggestion{Word: "canción", Key: "ón", Kind: "consonante", Source: SourceUser}, got[0])
	assert.Equal(t, "amado", got[1].Word)
	assert.Equal(t, "asonante", got[1].Kind)
}

func TestForBlankInput(t *testing.T) {
	idx := newIndex(t)
	got, err := idx.For(context.Background(), "   ", 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserWordsDoNotReplaceBuiltin(t *testing.T) {
	idx := newIndex(t, "Amante", "zarpante")
	got, err := idx.For(context.Background(), "el instante", 0)
	require.NoError(t, err)
	for _, s := range got {
		if s.Word == "amante" {
			assert.Equal(t, SourceBuiltin, s.Source)
		}
	}
}

func TestSharedSuffix(t *testing.T) {
	assert.Equal(t, 6, sharedSuffix("amante", "diamante"))
	assert.Equal(t, 0, sharedSuffix("corazon", "amado"))
	assert.Equal(t, 0, sharedSuffix("", "vida"))
}
