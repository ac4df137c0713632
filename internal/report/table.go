// Package report renders run summaries as aligned text tables.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth keeps the separator at least "---".
const minColumnWidth = 3

var cellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "|", "/")

// RenderTable renders headers and rows as a pipe table. Columns are padded by
// display width so wide characters (CJK company names) stay aligned. Rows
// shorter than the header are padded with empty cells; newlines inside a
// cell are flattened to spaces.
func RenderTable(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	table := make([][]string, 0, len(rows)+1)
	table = append(table, cleanCells(headers))

	for _, row := range rows {
		table = append(table, cleanCells(row))
	}

	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColumnWidth
	}

	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(table)+1)
	lines = append(lines, renderRow(table[0], colWidths))
	lines = append(lines, renderSeparator(colWidths))

	for _, row := range table[1:] {
		lines = append(lines, renderRow(row, colWidths))
	}

	return strings.Join(lines, "\n")
}

func cleanCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(cellReplacer.Replace(c))
	}

	return out
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(content, width))
		sb.WriteString(" |")
	}

	return sb.String()
}

func renderSeparator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
