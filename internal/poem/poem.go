// Package poem reads and writes sonnet text files.
package poem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/verte-zerg/soneto/internal/model"
)

// Poem is a titled list of exactly model.VerseCount verses.
type Poem struct {
	Title  string
	Verses []string
	// Extra counts non-blank lines dropped after the last verse.
	Extra int
}

// EmptyVerse stands in for an empty verse that precedes a written one, so
// later verses keep their positions.
const EmptyVerse = "-"

// stanzas are the verse counts of the quatrains and tercets.
var stanzas = []int{4, 4, 3, 3}

// Parse reads a poem. An optional first line "# Title" sets the title and
// blank lines are skipped. A line holding only EmptyVerse is an empty verse.
// Missing verses are left empty.
func Parse(r io.Reader) (Poem, error) {
	p := Poem{Verses: make([]string, 0, model.VerseCount)}
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first {
			first = false
			if title, ok := strings.CutPrefix(strings.TrimSpace(line), "#"); ok {
				p.Title = strings.TrimSpace(title)
				continue
			}
		}
		if len(p.Verses) == model.VerseCount {
			p.Extra++
			continue
		}
		verse := strings.TrimSpace(line)
		if verse == EmptyVerse {
			verse = ""
		}
		p.Verses = append(p.Verses, verse)
	}
	if err := scanner.Err(); err != nil {
		return Poem{}, fmt.Errorf("failed to read poem: %w", err)
	}
	for len(p.Verses) < model.VerseCount {
		p.Verses = append(p.Verses, "")
	}
	return p, nil
}

// Load parses the poem stored at path.
func Load(path string) (Poem, error) {
	file, err := os.Open(path)
	if err != nil {
		return Poem{}, fmt.Errorf("failed to open poem: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only poem.
			_ = cerr
		}
	}()
	return Parse(file)
}

// Render formats the poem with a title line and a blank line between
// stanzas. Trailing empty verses are omitted and the others are written as
// EmptyVerse.
func Render(p Poem) string {
	var b strings.Builder
	if p.Title != "" {
		b.WriteString("# ")
		b.WriteString(p.Title)
		b.WriteString("\n\n")
	}
	last := len(p.Verses) - 1
	for last >= 0 && strings.TrimSpace(p.Verses[last]) == "" {
		last--
	}
	i := 0
	for s, size := range stanzas {
		if i > last {
			break
		}
		if s > 0 {
			b.WriteString("\n")
		}
		for j := 0; j < size && i <= last; j++ {
			verse := p.Verses[i]
			if strings.TrimSpace(verse) == "" {
				verse = EmptyVerse
			}
			b.WriteString(verse)
			b.WriteString("\n")
			i++
		}
	}
	return b.String()
}

// Save writes the rendered poem to path.
func Save(path string, p Poem) error {
	if err := os.WriteFile(path, []byte(Render(p)), 0o644); err != nil {
		return fmt.Errorf("failed to save poem: %w", err)
	}
	return nil
}
