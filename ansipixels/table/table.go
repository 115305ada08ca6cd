// Package table renders aligned text tables, with optional box drawing borders,
// through ansipixels. Cells may contain escape sequences (e.g. color chips).
package table // import "fortio.org/colorconv/ansipixels/table"

import (
	"strings"

	"fortio.org/colorconv/ansipixels"
)

type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

type BorderStyle int

const (
	BorderNone         BorderStyle = iota // No borders at all
	BorderColumns                         // Only vertical lines between columns (│)
	BorderOuter                           // Only rounded outer box around the table
	BorderOuterColumns                    // Outer box + column separators
	BorderFull                            // Full grid with all cell borders
)

// WriteTable writes the table lines, each followed by a newline, with the given border style.
// Returns the width of the table including borders.
func WriteTable(
	ap *ansipixels.AnsiPixels, alignment []Alignment,
	columnSpacing int, table [][]string, borderStyle BorderStyle,
) int {
	lines, width := CreateTableLines(alignment, columnSpacing, table, borderStyle)
	for _, l := range lines {
		ap.WriteString(l)
		ap.WriteRune('\n')
	}
	return width
}

// drawHorizontalBorder creates a horizontal border line with the specified corner/junction characters.
func drawHorizontalBorder(ncols int, colWidths []int, columnSpacing int, left, middle, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for j := range ncols {
		sb.WriteString(strings.Repeat(ansipixels.Horizontal, colWidths[j]+2*columnSpacing))
		if j < ncols-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// calculateColumnWidths computes the maximum width needed for each column
// and returns both the column widths and all individual cell widths.
func calculateColumnWidths(table [][]string, ncols int) ([]int, [][]int) {
	colWidths := make([]int, ncols)
	allWidths := make([][]int, 0, len(table))
	for _, row := range table {
		if len(row) != ncols {
			panic("inconsistent number of columns in table")
		}
		allWidthsRow := make([]int, 0, ncols)
		for j, cell := range row {
			w := ansipixels.ScreenWidth(cell)
			allWidthsRow = append(allWidthsRow, w)
			colWidths[j] = max(colWidths[j], w)
		}
		allWidths = append(allWidths, allWidthsRow)
	}
	return colWidths, allWidths
}

// calculateTableWidth computes the total width of the table including borders and spacing.
func calculateTableWidth(colWidths []int, columnSpacing int, hasColumnBorders, hasOuterBorder bool) int {
	ncols := len(colWidths)
	maxw := 0
	for _, w := range colWidths {
		maxw += w
		if hasColumnBorders {
			maxw += 2 * columnSpacing
		}
	}
	if ncols > 1 {
		if hasColumnBorders {
			maxw += ncols - 1 // vertical separators between columns
		} else {
			maxw += columnSpacing * (ncols - 1)
		}
	}
	if hasOuterBorder {
		maxw += 2
	}
	return maxw
}

// formatCell formats a single cell with the specified alignment and padding.
func formatCell(sb *strings.Builder, cell string, cellWidth, columnWidth, columnSpacing int,
	align Alignment, hasColumnBorders bool,
) {
	delta := columnWidth - cellWidth
	if hasColumnBorders {
		sb.WriteString(strings.Repeat(" ", columnSpacing))
	}
	switch align {
	case Left:
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta))
	case Center:
		sb.WriteString(strings.Repeat(" ", delta/2))
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta/2+delta%2))
	case Right:
		sb.WriteString(strings.Repeat(" ", delta))
		sb.WriteString(cell)
	}
	if hasColumnBorders {
		sb.WriteString(strings.Repeat(" ", columnSpacing))
	}
}

// CreateTableLines returns the lines of the table and its width (all lines have that
// screen width). alignment has one entry per column and every row must have that many cells.
func CreateTableLines(
	alignment []Alignment,
	columnSpacing int,
	table [][]string,
	borderStyle BorderStyle,
) ([]string, int) {
	ncols := len(alignment)
	colWidths, allWidths := calculateColumnWidths(table, ncols)

	hasColumnBorders := borderStyle == BorderColumns || borderStyle == BorderOuterColumns || borderStyle == BorderFull
	// BorderOuter is drawn as a rounded box, the others with square corners.
	hasOuterBorder := borderStyle == BorderOuter || borderStyle == BorderOuterColumns || borderStyle == BorderFull
	maxw := calculateTableWidth(colWidths, columnSpacing, hasColumnBorders, hasOuterBorder)

	lines := make([]string, 0, 2*len(table)+1)
	innerWidth := maxw - 2
	switch borderStyle {
	case BorderOuter:
		lines = append(lines, ansipixels.RoundTopLeft+strings.Repeat(ansipixels.Horizontal, innerWidth)+ansipixels.RoundTopRight)
	case BorderOuterColumns, BorderFull:
		lines = append(lines, drawHorizontalBorder(ncols, colWidths, columnSpacing,
			ansipixels.SquareTopLeft, ansipixels.TopT, ansipixels.SquareTopRight))
	case BorderNone, BorderColumns:
	}

	var sb strings.Builder
	for i, row := range table {
		if borderStyle == BorderFull && i > 0 {
			lines = append(lines, drawHorizontalBorder(ncols, colWidths, columnSpacing,
				ansipixels.LeftT, ansipixels.MiddleCross, ansipixels.RightT))
		}
		if hasOuterBorder {
			sb.WriteString(ansipixels.Vertical)
		}
		for j, cell := range row {
			formatCell(&sb, cell, allWidths[i][j], colWidths[j], columnSpacing, alignment[j], hasColumnBorders)
			if j < ncols-1 {
				separator := strings.Repeat(" ", columnSpacing)
				if hasColumnBorders {
					separator = ansipixels.Vertical
				}
				sb.WriteString(separator)
			}
		}
		if hasOuterBorder {
			sb.WriteString(ansipixels.Vertical)
		}
		lines = append(lines, sb.String())
		sb.Reset()
	}

	switch borderStyle {
	case BorderOuter:
		lines = append(lines, ansipixels.RoundBottomLeft+strings.Repeat(ansipixels.Horizontal, innerWidth)+ansipixels.RoundBottomRight)
	case BorderOuterColumns, BorderFull:
		lines = append(lines, drawHorizontalBorder(ncols, colWidths, columnSpacing,
			ansipixels.SquareBottomLeft, ansipixels.BottomT, ansipixels.SquareBottomRight))
	case BorderNone, BorderColumns:
	}
	return lines, maxw
}
