package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/poem"
)

type update struct {
	poem poem.Poem
	res  model.AnalysisResult
}

func startWatcher(t *testing.T, path string) (<-chan update, <-chan error, context.CancelFunc) {
	t.Helper()
	updates := make(chan update, 8)
	done := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	w := New(path, 20*time.Millisecond, zaptest.NewLogger(t), func(_ context.Context, p poem.Poem, res model.AnalysisResult) error {
		updates <- update{poem: p, res: res}
		return nil
	})
	go func() { done <- w.Run(ctx) }()
	return updates, done, cancel
}

func next(t *testing.T, ch <-chan update) update {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for analysis")
		return update{}
	}
}

func TestRunReanalyzesOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soneto.txt")
	require.NoError(t, os.WriteFile(path, []byte("# Uno\nla luna toca la casa amante\n"), 0o644))

	updates, done, cancel := startWatcher(t, path)

	first := next(t, updates)
	assert.Equal(t, "Uno", first.poem.Title)
	assert.Equal(t, 11, first.res.Verses[0].Count)

	require.NoError(t, os.WriteFile(path, []byte("# Dos\nla casa\n"), 0o644))
	var second update
	for second.poem.Title != "Dos" {
		second = next(t, updates)
	}
	assert.Equal(t, 3, second.res.Verses[0].Count)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not stop")
	}
}

func TestRunIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soneto.txt")
	require.NoError(t, os.WriteFile(path, []byte("la casa\n"), 0o644))

	updates, done, cancel := startWatcher(t, path)
	defer func() {
		cancel()
		<-done
	}()
	next(t, updates)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "otro.txt"), []byte("x\n"), 0o644))
	select {
	case u := <-updates:
		t.Fatalf("unexpected analysis: %+v", u.poem)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRunStopsOnHandlerError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soneto.txt")
	require.NoError(t, os.WriteFile(path, []byte("la casa\n"), 0o644))
	boom := errors.New("boom")
	w := New(path, 0, nil, func(context.Context, poem.Poem, model.AnalysisResult) error {
		return boom
	})
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRunMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "soneto.txt"), 0, nil, func(context.Context, poem.Poem, model.AnalysisResult) error {
		return nil
	})
	require.Error(t, w.Run(context.Background()))
}
