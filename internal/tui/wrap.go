package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// syllableCell is one syllable plus the join drawn after it.
type syllableCell struct {
	text      string
	join      string
	joinWidth int
}

func (c syllableCell) width() int {
	return runewidth.StringWidth(c.text) + c.joinWidth
}

func (c syllableCell) render() string {
	return c.text + c.join
}

// buildSyllableCells lays out syllables joined by '-', or by '‿' where a
// synalepha merges the syllable with the next one.
func buildSyllableCells(syllables []string, synalephas []int) []syllableCell {
	joined := make(map[int]bool, len(synalephas))
	for _, idx := range synalephas {
		joined[idx] = true
	}
	cells := make([]syllableCell, 0, len(syllables))
	for i, syl := range syllables {
		cell := syllableCell{text: syl}
		if i < len(syllables)-1 {
			sep, style := "-", pendingStyle
			if joined[i] {
				sep, style = "‿", joinStyle
			}
			cell.join = style.Render(sep)
			cell.joinWidth = runewidth.StringWidth(sep)
		}
		cells = append(cells, cell)
	}
	return cells
}

func renderCells(cells []syllableCell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.render())
	}
	return b.String()
}

// wrapCells packs whole syllables into lines of at most width columns,
// keeping each join at the end of its line. A syllable wider than a line
// is split by runes.
func wrapCells(cells []syllableCell, width int) string {
	if width <= 0 {
		return renderCells(cells)
	}
	var lines []string
	var line strings.Builder
	used := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}
	for _, c := range cells {
		w := c.width()
		if used > 0 && used+w > width {
			flush()
		}
		if w <= width {
			line.WriteString(c.render())
			used += w
			continue
		}
		for _, r := range c.text {
			rw := runewidth.RuneWidth(r)
			if used > 0 && used+rw > width {
				flush()
			}
			line.WriteRune(r)
			used += rw
		}
		if used > 0 && used+c.joinWidth > width {
			flush()
		}
		line.WriteString(c.join)
		used += c.joinWidth
	}
	if used > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
