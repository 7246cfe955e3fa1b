// Package wordlist reads rhyme word lists and holds the built-in table.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrEmpty is returned when a list holds no words.
var ErrEmpty = errors.New("word list is empty")

// LoadWords reads the word list at path. See Read for the format.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return Read(file)
}

// Read parses a word list. Words are separated by whitespace or commas,
// and '#' starts a comment that runs to the end of the line.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		words = append(words, strings.FieldsFunc(line, isSeparator)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}
