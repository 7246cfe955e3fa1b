// Package report renders analysis results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/poem"
	"github.com/verte-zerg/soneto/internal/sonnet"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const terminalWidthBackup = 80

// Options controls rendering.
type Options struct {
	Format string
	// Color forces ANSI colors in text output even when w is not a terminal.
	Color bool
	// Width limits text lines; zero uses the terminal width when w is one.
	Width int
}

// Document is the structured form of a report.
type Document struct {
	Title                string `json:"title,omitempty" yaml:"title,omitempty"`
	model.AnalysisResult `json:",inline" yaml:",inline"`
	Progress             int `json:"progress" yaml:"progress"`
	DroppedLines         int `json:"dropped_lines,omitempty" yaml:"dropped_lines,omitempty"`
}

// NewDocument bundles a poem and its analysis.
func NewDocument(p poem.Poem, res model.AnalysisResult) Document {
	return Document{
		Title:          p.Title,
		AnalysisResult: res,
		Progress:       res.Progress(),
		DroppedLines:   p.Extra,
	}
}

// ValidFormat reports whether format names a supported output.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Write renders doc to w in the requested format.
func Write(w io.Writer, doc Document, opts Options) error {
	switch opts.Format {
	case "", FormatText:
		return writeText(w, doc, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
}

type palette struct {
	title     lipgloss.Style
	correct   lipgloss.Style
	partial   lipgloss.Style
	incorrect lipgloss.Style
	muted     lipgloss.Style
}

func newPalette(w io.Writer, useColor bool) palette {
	r := lipgloss.NewRenderer(w)
	if useColor {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return palette{
		title:     r.NewStyle().Bold(true),
		correct:   r.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		partial:   r.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		incorrect: r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		muted:     r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	}
}

func (p palette) status(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusCorrect:
		return p.correct
	case model.StatusPartial:
		return p.partial
	case model.StatusIncorrect:
		return p.incorrect
	default:
		return p.muted
	}
}

var statusNames = map[model.Status]string{
	model.StatusEmpty:     "vacío",
	model.StatusIncorrect: "incorrecto",
	model.StatusPartial:   "parcial",
	model.StatusCorrect:   "correcto",
}

const verseCol = 1

func writeText(w io.Writer, doc Document, opts Options) error {
	pal := newPalette(w, shouldUseColor(w, opts.Color))
	width := opts.Width
	if width <= 0 {
		width = terminalWidth(w)
	}

	headers := []string{"#", "Verso", "Sílabas", "Rima", "Grupo", "Estado"}
	rows := make([][]string, len(doc.Verses))
	for i, v := range doc.Verses {
		count := ""
		if v.Status != model.StatusEmpty {
			count = strconv.Itoa(v.Count)
		}
		rows[i] = []string{
			strconv.Itoa(v.Index),
			v.Clean,
			count,
			v.RhymeKey,
			v.Label,
			statusNames[v.Status],
		}
	}
	if width > 0 {
		fitVerseColumn(headers, rows, width)
	}
	paint := func(r, col int, cell string) string {
		if col == len(headers)-1 {
			return pal.status(doc.Verses[r].Status).Render(cell)
		}
		return cell
	}

	var b strings.Builder
	if doc.Title != "" {
		b.WriteString(pal.title.Render(doc.Title))
		b.WriteString("\n\n")
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 2: true}, paint) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	structure := "no válida"
	if doc.StructureValid {
		structure = "válida"
	}
	complete := "no"
	if doc.Score.Complete {
		complete = "sí"
	}
	summary := [][]string{
		{"Esquema:", Scheme(doc.Labels)},
		{"Estructura:", structure},
		{"Puntuación:", fmt.Sprintf("%d / %d (anunciado %d)", doc.Score.Total, doc.Score.Max, doc.Score.DeclaredMax)},
		{"Progreso:", fmt.Sprintf("%d%%", doc.Progress)},
		{"Completo:", complete},
	}
	for _, line := range formatTable(nil, summary, nil, nil) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if doc.DroppedLines > 0 {
		b.WriteString(pal.muted.Render(fmt.Sprintf("%d líneas ignoradas tras el verso %d", doc.DroppedLines, model.VerseCount)))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Scheme joins labels by stanza, using "-" for empty verses.
func Scheme(labels []string) string {
	var b strings.Builder
	for i, l := range labels {
		if i == 4 || i == 8 || i == 11 {
			b.WriteByte(' ')
		}
		if l == "" {
			l = "-"
		}
		b.WriteString(l)
	}
	return b.String()
}

// fitVerseColumn truncates verses so table rows fit in width cells.
func fitVerseColumn(headers []string, rows [][]string, width int) {
	others := 0
	for col := range headers {
		if col == verseCol {
			continue
		}
		w := displayWidth(headers[col])
		for _, row := range rows {
			if cw := displayWidth(row[col]); cw > w {
				w = cw
			}
		}
		others += w + 1
	}
	avail := width - others
	if avail < displayWidth(headers[verseCol]) {
		avail = displayWidth(headers[verseCol])
	}
	for _, row := range rows {
		row[verseCol] = truncate(row[verseCol], avail)
	}
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Help renders the reference texts shown by the help panel and the CLI.
func Help() string {
	info := sonnet.Info
	var b strings.Builder
	for _, section := range []struct{ title, body string }{
		{"Estructura", info.Structure},
		{"Esquema de rima", info.RhymeScheme},
		{"Métrica", info.Meter},
		{"Sinalefa", info.Synalepha},
	} {
		b.WriteString(section.title)
		b.WriteString("\n")
		b.WriteString(section.body)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
