// Package tui provides the Bubble Tea sonnet editor.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/verte-zerg/soneto/internal/elision"
	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/poem"
	"github.com/verte-zerg/soneto/internal/report"
	"github.com/verte-zerg/soneto/internal/sonnet"
	"github.com/verte-zerg/soneto/internal/suggest"
)

// Suggester looks up rhymes for a verse.
type Suggester interface {
	For(ctx context.Context, input string, limit int) ([]model.Suggestion, error)
}

var _ Suggester = (*suggest.Index)(nil)

// Model implements the Bubble Tea editor.
type Model struct {
	config    model.Config
	logger    *zap.Logger
	suggester Suggester
	path      string
	title     string

	inputs []textinput.Model
	focus  int

	result      model.AnalysisResult
	suggestions []model.Suggestion

	showHelp bool
	message  string

	width  int
	height int
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	partialStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	joinStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// NewModel constructs an editor preloaded with p. The suggester may be nil.
func NewModel(cfg model.Config, logger *zap.Logger, suggester Suggester, path string, p poem.Poem) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		config:    cfg,
		logger:    logger,
		suggester: suggester,
		path:      path,
		title:     p.Title,
	}
	m.inputs = make([]textinput.Model, model.VerseCount)
	for i := range m.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = fmt.Sprintf("verso %d", i+1)
		input.CharLimit = 0
		input.Cursor.SetMode(cursor.CursorStatic)
		if i < len(p.Verses) {
			input.SetValue(p.Verses[i])
		}
		m.inputs[i] = input
	}
	m.inputs[0].Focus()
	m.analyze()
	m.refreshSuggestions()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil
	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "f1", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = true
			return m, nil
		case "up", "shift+tab":
			m.moveFocus(-1)
			return m, nil
		case "down", "tab", "enter":
			m.moveFocus(1)
			return m, nil
		case "ctrl+e":
			m.insertMarker()
			return m, nil
		case "ctrl+s":
			m.save()
			return m, nil
		}
		var cmd tea.Cmd
		before := m.inputs[m.focus].Value()
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before {
			m.message = ""
			m.analyze()
			m.refreshSuggestions()
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		help := modalStyle.Render(strings.TrimRight(report.Help(), "\n"))
		if m.width == 0 || m.height == 0 {
			return help
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help)
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n\n")
	}
	for i := range m.inputs {
		if i == 4 || i == 8 || i == 11 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderVerse(i))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	if line := m.renderSuggestions(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(pendingStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Verses returns the current text of every verse.
func (m *Model) Verses() []string {
	out := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		out[i] = input.Value()
	}
	return out
}

// Result returns the latest analysis.
func (m *Model) Result() model.AnalysisResult {
	return m.result
}

func (m *Model) analyze() {
	m.result = sonnet.Analyze(m.Verses(), nil)
}

func (m *Model) refreshSuggestions() {
	m.suggestions = nil
	if !m.config.Suggestions || m.suggester == nil {
		return
	}
	verse := m.inputs[m.focus].Value()
	if strings.TrimSpace(verse) == "" {
		return
	}
	found, err := m.suggester.For(context.Background(), verse, m.config.SuggestLimit)
	if err != nil {
		m.logger.Debug("suggestions failed", zap.Error(err))
		return
	}
	m.suggestions = found
}

func (m *Model) moveFocus(delta int) {
	next := (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = next
	m.inputs[m.focus].Focus()
	m.refreshSuggestions()
}

func (m *Model) insertMarker() {
	input := &m.inputs[m.focus]
	pos := input.Position() - 1
	if pos < 0 {
		pos = 0
	}
	before := input.Value()
	updated := elision.InsertMarker(m.Verses(), m.focus, pos)
	if updated[m.focus] == before {
		m.message = "No hay sinalefa posible junto al cursor"
		return
	}
	input.SetValue(updated[m.focus])
	input.SetCursor(markerIndex(before, updated[m.focus]) + 1)
	m.message = ""
	m.analyze()
}

// markerIndex returns the rune index where after first differs from before.
func markerIndex(before, after string) int {
	b, a := []rune(before), []rune(after)
	i := 0
	for i < len(b) && i < len(a) && b[i] == a[i] {
		i++
	}
	return i
}

func (m *Model) save() {
	if m.path == "" {
		m.message = "Sin archivo: inicia soneto con una ruta para guardar"
		return
	}
	p := poem.Poem{Title: m.title, Verses: m.Verses()}
	if err := poem.Save(m.path, p); err != nil {
		m.logger.Debug("save failed", zap.Error(err))
		m.message = fmt.Sprintf("Error al guardar: %v", err)
		return
	}
	m.message = "Guardado en " + m.path
}

func (m *Model) resizeInputs() {
	width := m.width - 24
	if width < 10 {
		width = 10
	}
	for i := range m.inputs {
		m.inputs[i].Width = width
	}
}

func statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusCorrect:
		return correctStyle
	case model.StatusPartial:
		return partialStyle
	case model.StatusIncorrect:
		return incorrectStyle
	default:
		return pendingStyle
	}
}

var statusGlyphs = map[model.Status]string{
	model.StatusEmpty:     " ",
	model.StatusIncorrect: "✗",
	model.StatusPartial:   "~",
	model.StatusCorrect:   "✓",
}

func (m *Model) renderVerse(i int) string {
	marker := "  "
	if i == m.focus {
		marker = "> "
	}
	v := m.result.Verses[i]
	info := ""
	if v.Status != model.StatusEmpty {
		label := v.Label
		if label == "" {
			label = "-"
		}
		info = fmt.Sprintf("%2d %s", v.Count, label)
	}
	style := statusStyle(v.Status)
	return fmt.Sprintf("%s%2d %s %s  %s", marker, i+1, style.Render(statusGlyphs[v.Status]), m.inputs[i].View(), style.Render(info))
}

func (m *Model) renderDetail() string {
	v := m.result.Verses[m.focus]
	desc := sonnet.MetricsDescription(v.Count)
	if v.Status == model.StatusEmpty {
		return pendingStyle.Render(desc)
	}
	width := m.width - runewidth.StringWidth(desc) - 2
	syllables := wrapCells(buildSyllableCells(v.Syllables, v.Synalephas), width)
	return statusStyle(v.Status).Render(desc) + "  " + syllables
}

func (m *Model) renderSuggestions() string {
	if len(m.suggestions) == 0 {
		return ""
	}
	words := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		words[i] = s.Word
	}
	return pendingStyle.Render("Rimas: " + strings.Join(words, ", "))
}

func (m *Model) renderFooter() string {
	structure := "estructura incompleta"
	if m.result.StructureValid {
		structure = "estructura válida"
	}
	segments := []string{
		fmt.Sprintf("Puntos %d/%d", m.result.Score.Total, m.result.Score.Max),
		fmt.Sprintf("Progreso %d%%", m.result.Progress()),
		report.Scheme(m.result.Labels),
		structure,
	}
	if m.result.Score.Complete {
		segments = append(segments, "¡Soneto completo!")
	}
	segments = append(segments, "F1 ayuda · ^E sinalefa · ^S guardar")
	return footerStyle.Render(strings.Join(segments, "  "))
}
