// Package table renders fixed-width console tables. Every column shares a
// single width taken from the widest cell, so small traffic tables stay
// aligned no matter which callsigns show up.
package table

import (
	"fmt"
	"strings"

	"vatsim-traffic/pkg/style"
)

// Table holds a title, a head row and data rows.
type Table struct {
	Title string
	Head  []string
	rows  [][]string
}

// New creates a table with the given title and head cells.
func New(title string, head ...string) *Table {
	return &Table{
		Title: title,
		Head:  head,
	}
}

// AddRow appends a row to the table. Rows shorter than the head are padded
// with empty cells; longer rows are truncated to the head width.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Head))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the finished table, surrounded by blank lines the way the
// dialog prints it.
func (t *Table) Render() string {
	width := t.widestCell()

	headLine := formatRow(t.Head, width)
	rule := strings.Repeat("-", len(headLine))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(style.Yellow(t.Title))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(headLine)
	b.WriteString("\n")
	b.WriteString(rule)
	for _, row := range t.rows {
		b.WriteString("\n")
		b.WriteString(formatRow(row, width))
	}
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	return b.String()
}

// widestCell returns the width of the widest cell in the head and all rows.
func (t *Table) widestCell() int {
	width := 0
	for _, cell := range t.Head {
		if len(cell) > width {
			width = len(cell)
		}
	}
	for _, row := range t.rows {
		for _, cell := range row {
			if len(cell) > width {
				width = len(cell)
			}
		}
	}
	return width
}

// formatRow renders one row with every cell padded to width.
func formatRow(cells []string, width int) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(fmt.Sprintf("| %-*s ", width, cell))
		if i == len(cells)-1 {
			b.WriteString("|")
		}
	}
	return b.String()
}
