// Package suggest proposes dictionary words that rhyme with a verse.
package suggest

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/rhyme"
	"github.com/verte-zerg/soneto/internal/store"
	"github.com/verte-zerg/soneto/internal/text"
	"github.com/verte-zerg/soneto/internal/wordlist"
)

// Word sources recorded in the index.
const (
	SourceBuiltin = "builtin"
	SourceUser    = "user"
)

// DefaultLimit caps suggestions when no limit is configured.
const DefaultLimit = 10

// Index answers rhyme lookups against an in-memory dictionary.
type Index struct {
	store  *store.Store
	logger *zap.Logger
}

// New builds an index holding the built-in words and any extra words.
// Extra words are filtered to the Spanish alphabet.
func New(ctx context.Context, logger *zap.Logger, extra []string) (*Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	st, err := store.Open(store.MemoryPath)
	if err != nil {
		return nil, err
	}
	idx := &Index{store: st, logger: logger}

	builtin, err := st.InsertWords(ctx, entries(wordlist.Builtin(), SourceBuiltin))
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to index builtin words: %w", err)
	}
	kept := wordlist.Apply(extra, wordlist.FilterForLang("es"))
	user, err := st.InsertWords(ctx, entries(kept, SourceUser))
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to index word list: %w", err)
	}
	logger.Debug("rhyme index ready",
		zap.Int("builtin", builtin),
		zap.Int("user", user),
		zap.Int("rejected", len(extra)-len(kept)),
	)
	return idx, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.store.Close()
}

// For returns up to limit words rhyming with the last word of input.
// Consonant rhymes come first, then words sharing a longer ending with the
// input word. The last word itself is never suggested.
func (i *Index) For(ctx context.Context, input string, limit int) ([]model.Suggestion, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	key := rhyme.Extract(input)
	if key == "" {
		return nil, nil
	}
	sig := rhyme.SignatureOf(key)
	own := text.Fold(text.LastWord(input))

	candidates, err := i.store.Candidates(ctx, sig.Ending, sig.Vowels, 0)
	if err != nil {
		return nil, err
	}
	type ranked struct {
		s      model.Suggestion
		kind   rhyme.Kind
		shared int
	}
	var pool []ranked
	for _, c := range candidates {
		folded := text.Fold(c.Word)
		if folded == own {
			continue
		}
		kind := rhyme.Classify(key, c.Key)
		if kind == rhyme.KindNone {
			continue
		}
		pool = append(pool, ranked{
			s:      model.Suggestion{Word: c.Word, Key: c.Key, Kind: kind.String(), Source: c.Source},
			kind:   kind,
			shared: sharedSuffix(own, folded),
		})
	}
	// Candidates arrive sorted by source then word, so the stable sort keeps
	// that order among equals.
	sort.SliceStable(pool, func(a, b int) bool {
		if pool[a].kind != pool[b].kind {
			return pool[a].kind == rhyme.KindConsonant
		}
		return pool[a].shared > pool[b].shared
	})
	if len(pool) > limit {
		pool = pool[:limit]
	}
	out := make([]model.Suggestion, len(pool))
	for j, r := range pool {
		out[j] = r.s
	}
	i.logger.Debug("suggestions", zap.String("key", key), zap.Int("found", len(out)))
	return out, nil
}

func sharedSuffix(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[len(ra)-1-n] == rb[len(rb)-1-n] {
		n++
	}
	return n
}

func entries(words []string, source string) []model.DictionaryEntry {
	out := make([]model.DictionaryEntry, 0, len(words))
	for _, w := range words {
		key := rhyme.Extract(w)
		if key == "" {
			continue
		}
		sig := rhyme.SignatureOf(key)
		out = append(out, model.DictionaryEntry{
			Word:   w,
			Key:    key,
			Folded: sig.Folded,
			Ending: sig.Ending,
			Vowels: sig.Vowels,
			Source: source,
		})
	}
	return out
}
