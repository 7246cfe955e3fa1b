package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/soneto/internal/model"
)

// WriteSuggestions renders rhyme suggestions in the requested format.
func WriteSuggestions(w io.Writer, suggestions []model.Suggestion, format string) error {
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}
	switch format {
	case "", FormatText:
		if len(suggestions) == 0 {
			_, err := io.WriteString(w, "Sin sugerencias\n")
			return err
		}
		rows := make([][]string, len(suggestions))
		for i, s := range suggestions {
			rows[i] = []string{s.Word, s.Kind, s.Source}
		}
		lines := formatTable([]string{"Palabra", "Rima", "Origen"}, rows, nil, nil)
		if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
			return fmt.Errorf("failed to write suggestions: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(suggestions); err != nil {
			return fmt.Errorf("failed to encode json suggestions: %w", err)
		}
		return nil
	case FormatYAML:
		out, err := yaml.Marshal(suggestions)
		if err != nil {
			return fmt.Errorf("failed to encode yaml suggestions: %w", err)
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("failed to write suggestions: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
