// Package notion2md renders a block tree back to the nearest equivalent
// Markdown. For input confined to the supported subset, re-parsing the
// rendered text yields a structurally equal tree.
package notion2md

import (
	"fmt"
	"strings"

	"github.com/studyflow/md2notion/notion"
)

// Translator transforms a block tree to Markdown text.
type Translator struct {
	buf *strings.Builder
}

// NewTranslator constructs a blocks-to-markdown translator.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate renders the block list as Markdown, blocks separated by blank
// lines.
func (t *Translator) Translate(blocks []*notion.Block) string {
	t.buf = new(strings.Builder)

	ordinal := 0
	for i, block := range blocks {
		if i > 0 {
			// Consecutive list items stay in one list; everything else
			// gets a separating blank line.
			if sameListRun(blocks[i-1], block) {
				t.buf.WriteString("\n")
			} else {
				t.buf.WriteString("\n\n")
			}
		}
		if i > 0 && blocks[i-1].Type == block.Type {
			ordinal++
		} else {
			ordinal = 0
		}
		t.visit(block, 0, ordinal)
	}

	return t.buf.String()
}

func sameListRun(prev, cur *notion.Block) bool {
	return notion.IsContainerBlock(prev.Type) && notion.IsContainerBlock(cur.Type)
}

func (t *Translator) visit(block *notion.Block, depth, ordinal int) {
	switch block.Type {
	case notion.BlockParagraph:
		t.buf.WriteString(renderRuns(block.Paragraph.RichText))

	case notion.BlockHeading1, notion.BlockHeading2, notion.BlockHeading3:
		t.buf.WriteString(strings.Repeat("#", block.HeadingLevel()))
		t.buf.WriteString(" ")
		t.buf.WriteString(renderRuns(block.RichText()))

	case notion.BlockBulletedListItem, notion.BlockNumberedListItem:
		t.visitListItem(block, depth, ordinal)

	case notion.BlockQuote:
		for i, line := range strings.Split(renderRuns(block.Quote.RichText), "\n") {
			if i > 0 {
				t.buf.WriteString("\n")
			}
			t.buf.WriteString("> ")
			t.buf.WriteString(line)
		}

	case notion.BlockCode:
		t.buf.WriteString("```")
		t.buf.WriteString(block.Code.Language)
		t.buf.WriteString("\n")
		t.buf.WriteString(block.Code.Text)
		t.buf.WriteString("\n```")

	case notion.BlockDivider:
		t.buf.WriteString("---")

	case notion.BlockEquation:
		t.buf.WriteString("$$\n")
		t.buf.WriteString(block.Equation.Expression)
		t.buf.WriteString("\n$$")

	case notion.BlockTable:
		t.visitTable(block.Table)
	}
}

func (t *Translator) visitListItem(block *notion.Block, depth, ordinal int) {
	indent := strings.Repeat("  ", depth)

	t.buf.WriteString(indent)
	if block.Type == notion.BlockBulletedListItem {
		t.buf.WriteString("- ")
		t.buf.WriteString(renderRuns(block.BulletedListItem.RichText))
	} else {
		fmt.Fprintf(t.buf, "%d. ", ordinal+1)
		t.buf.WriteString(renderRuns(block.NumberedListItem.RichText))
	}

	children := block.Children()
	childOrdinal := 0
	for i, child := range children {
		if i > 0 && children[i-1].Type == child.Type {
			childOrdinal++
		} else {
			childOrdinal = 0
		}
		t.buf.WriteString("\n")
		t.visit(child, depth+1, childOrdinal)
	}
}

func (t *Translator) visitTable(table *notion.TableContent) {
	writeRow := func(cells [][]notion.RichTextRun) {
		t.buf.WriteString("|")
		for _, cell := range cells {
			t.buf.WriteString(" ")
			t.buf.WriteString(renderRuns(cell))
			t.buf.WriteString(" |")
		}
	}

	if len(table.Rows) == 0 {
		return
	}

	writeRow(table.Rows[0])
	t.buf.WriteString("\n|")
	for i := 0; i < table.ColumnCount; i++ {
		t.buf.WriteString(" --- |")
	}
	for _, row := range table.Rows[1:] {
		t.buf.WriteString("\n")
		writeRow(row)
	}
}

// renderRuns renders a run sequence with inline markers reapplied.
func renderRuns(runs []notion.RichTextRun) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(renderRun(run))
	}
	return sb.String()
}

func renderRun(run notion.RichTextRun) string {
	text := run.Text.Content

	switch {
	case run.Annotations.Code:
		text = "`" + text + "`"
	case run.Text.Link != nil:
		text = "[" + text + "](" + run.Text.Link.URL + ")"
	default:
		if run.Annotations.Bold {
			text = "**" + text + "**"
		}
		if run.Annotations.Italic {
			text = "*" + text + "*"
		}
		if run.Annotations.Strikethrough {
			text = "~~" + text + "~~"
		}
	}
	return text
}
