// Package watch re-analyzes a poem file whenever it changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/poem"
	"github.com/verte-zerg/soneto/internal/sonnet"
)

// DefaultDebounce groups the burst of events a single save produces.
const DefaultDebounce = 200 * time.Millisecond

// Handler receives every fresh analysis. Returning an error stops the watcher.
type Handler func(ctx context.Context, p poem.Poem, res model.AnalysisResult) error

// Watcher follows one poem file.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	handle   Handler
}

// New creates a watcher for path. A non-positive debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, logger *zap.Logger, handle Handler) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger,
		handle:   handle,
	}
}

// Run analyzes the file once and then after every change until ctx is done.
// The parent directory is watched so editors that save by rename are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			w.logger.Warn("failed to close watcher", zap.Error(cerr))
		}
	}()
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	if err := w.reload(ctx); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch stopped", zap.String("path", w.path))
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("poem changed", zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if err := w.reload(ctx); err != nil {
				return err
			}
		}
	}
}

// reload parses and analyzes the file. A missing or unreadable file is
// logged and skipped since it is often caught mid-save.
func (w *Watcher) reload(ctx context.Context) error {
	p, err := poem.Load(w.path)
	if err != nil {
		w.logger.Warn("skipping unreadable poem", zap.String("path", w.path), zap.Error(err))
		return nil
	}
	if p.Extra > 0 {
		w.logger.Warn("extra lines ignored", zap.Int("lines", p.Extra))
	}
	res := sonnet.Analyze(p.Verses, nil)
	if err := w.handle(ctx, p, res); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("failed to handle analysis: %w", err)
	}
	return nil
}
