package md2notion

import (
	"regexp"
	"strings"

	"github.com/studyflow/md2notion/notion"
)

// tableSeparatorPattern matches a separator row: cells of only dashes,
// colons and whitespace, separated by pipes.
var tableSeparatorPattern = regexp.MustCompile(`^\s*\|?[\s:|-]+\|?\s*$`)

// isTableSeparator reports whether the line is the header/body separator of
// a pipe table. A malformed separator simply fails this check, so the table
// lookahead never fires and the lines fall through to paragraph handling.
func isTableSeparator(line string) bool {
	return strings.Contains(line, "|") &&
		strings.Contains(line, "-") &&
		tableSeparatorPattern.MatchString(line)
}

// parseTable consumes a header line, the separator line and the data lines
// that follow, returning the table block and the index of the first
// unconsumed line. The caller has already confirmed lines[start+1] is a
// separator row. Rows are right-padded with empty cells to the widest row.
func parseTable(lines []string, start int) (*notion.Block, int) {
	rows := [][]string{splitTableRow(lines[start])}

	i := start + 2 // header + separator
	for i < len(lines) && strings.Contains(lines[i], "|") && strings.TrimSpace(lines[i]) != "" {
		rows = append(rows, splitTableRow(lines[i]))
		i++
	}

	columnCount := 0
	for _, row := range rows {
		if len(row) > columnCount {
			columnCount = len(row)
		}
	}

	cellRows := make([][][]notion.RichTextRun, 0, len(rows))
	for _, row := range rows {
		cells := make([][]notion.RichTextRun, 0, columnCount)
		for _, cell := range row {
			cells = append(cells, Tokenize(cell))
		}
		for len(cells) < columnCount {
			cells = append(cells, Tokenize(""))
		}
		cellRows = append(cellRows, cells)
	}

	return notion.NewTableBlock(columnCount, cellRows), i
}

// splitTableRow splits a row on pipes, trimming cells and dropping the
// empty edge cells produced by a leading or trailing pipe.
func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	parts := strings.Split(trimmed, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, strings.TrimSpace(part))
	}
	return cells
}
