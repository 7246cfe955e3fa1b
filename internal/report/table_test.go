package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"#", "Verso", "Sílabas"}
	rows := [][]string{
		{"1", "la luna", "11"},
		{"14", "canción", "9"},
	}
	rightAlign := map[int]bool{0: true, 2: true}

	lines := formatTable(headers, rows, rightAlign, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != " # Verso   Sílabas" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != " 1 la luna      11" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "14 canción       9" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableTrimsTrailingPadding(t *testing.T) {
	lines := formatTable([]string{"a", "b"}, [][]string{{"xxxx", ""}}, nil, nil)
	if lines[1] != "xxxx" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("la luna toca", 6); got != "la lu…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncate("corto", 10); got != "corto" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncate("sin límite", 0); got != "sin límite" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
