package table

import (
	"bytes"
	"strings"
	"testing"

	"fortio.org/colorconv/ansipixels"
)

var people = [][]string{
	{"Name", "Age", "City"},
	{"Alice", "30", "NYC"},
	{"Bob", "25", "LA"},
}

func checkWidths(t *testing.T, lines []string, width int) {
	t.Helper()
	for i, line := range lines {
		if w := ansipixels.ScreenWidth(line); w != width {
			t.Errorf("Line %d has width %d, expected %d: %q", i, w, width, line)
		}
	}
}

func TestCreateTableLines_LeftAlignment(t *testing.T) {
	lines, width := CreateTableLines([]Alignment{Left, Left, Left}, 2, people, BorderNone)
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
	checkWidths(t, lines, width)
	if lines[2] != "Bob    25   LA  " {
		t.Errorf("Unexpected left aligned line %q", lines[2])
	}
}

func TestCreateTableLines_RightAlignment(t *testing.T) {
	lines, width := CreateTableLines([]Alignment{Right, Right, Right}, 2, people, BorderNone)
	checkWidths(t, lines, width)
	bobStart := strings.Index(lines[2], "Bob")
	aliceStart := strings.Index(lines[1], "Alice")
	if bobStart <= aliceStart {
		t.Errorf("Bob should have more leading spaces than Alice with right alignment")
	}
}

func TestCreateTableLines_CenterAlignmentOddEven(t *testing.T) {
	table := [][]string{{"abcd"}, {"a"}, {"ab"}}
	lines, width := CreateTableLines([]Alignment{Center}, 0, table, BorderNone)
	checkWidths(t, lines, width)
	expected := []string{"abcd", " a  ", " ab "}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestCreateTableLines_InconsistentColumns(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for inconsistent columns")
		}
	}()
	CreateTableLines([]Alignment{Left, Left}, 1, [][]string{{"a", "b"}, {"c"}}, BorderNone)
}

func TestCreateTableLines_WithColorCells(t *testing.T) {
	chip := "\x1b[48;2;255;0;0m  \x1b[0m"
	table := [][]string{{chip, "HEX", "#FF0000"}, {chip, "CMYK", "(0%, 100%, 100%, 0%)"}}
	lines, width := CreateTableLines([]Alignment{Left, Right, Left}, 1, table, BorderOuterColumns)
	checkWidths(t, lines, width)
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "│ "+chip+" │  HEX │") {
		t.Errorf("Unexpected first row %q", lines[1])
	}
}

func TestCreateTableLines_BorderStyles(t *testing.T) {
	topColumns := "┌" + strings.Repeat("─", 7) + "┬" + strings.Repeat("─", 5) + "┬" + strings.Repeat("─", 6) + "┐"
	tests := []struct {
		style BorderStyle
		lines int
		first string
	}{
		{BorderNone, 3, "Name  Age City"},
		{BorderColumns, 3, " Name  │ Age │ City "},
		{BorderOuter, 5, "╭" + strings.Repeat("─", 14) + "╮"},
		{BorderOuterColumns, 5, topColumns},
		{BorderFull, 7, topColumns},
	}
	for _, tt := range tests {
		lines, width := CreateTableLines([]Alignment{Left, Left, Left}, 1, people, tt.style)
		if len(lines) != tt.lines {
			t.Errorf("style %d: %d lines, expected %d", tt.style, len(lines), tt.lines)
		}
		checkWidths(t, lines, width)
		if lines[0] != tt.first {
			t.Errorf("style %d: first line %q, expected %q", tt.style, lines[0], tt.first)
		}
	}
}

func TestWriteTable(t *testing.T) {
	var out bytes.Buffer
	ap := ansipixels.NewWriter(&out)
	width := WriteTable(ap, []Alignment{Left, Left}, 1, [][]string{{"a", "b"}}, BorderOuter)
	_ = ap.Flush()
	expected := "╭───╮\n│a b│\n╰───╯\n"
	if out.String() != expected || width != 5 {
		t.Errorf("got %q (width %d), expected %q", out.String(), width, expected)
	}
}
