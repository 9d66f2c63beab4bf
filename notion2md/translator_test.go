package notion2md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/md2notion/md2notion"
	"github.com/studyflow/md2notion/notion"
)

func TestRenderHeadingAndParagraph(t *testing.T) {
	blocks := []*notion.Block{
		notion.NewHeadingBlock(2, []notion.RichTextRun{notion.NewTextRun("Title")}),
		notion.NewParagraphBlock([]notion.RichTextRun{notion.NewTextRun("Body text.")}),
	}

	got := NewTranslator().Translate(blocks)
	assert.Equal(t, "## Title\n\nBody text.", got)
}

func TestRenderInlineMarkers(t *testing.T) {
	blocks := []*notion.Block{
		notion.NewParagraphBlock([]notion.RichTextRun{
			notion.NewStyledRun("bold", notion.Annotations{Bold: true}),
			notion.NewTextRun(" and "),
			notion.NewStyledRun("code", notion.Annotations{Code: true}),
			notion.NewTextRun(" and "),
			notion.NewLinkRun("docs", "https://example.com"),
		}),
	}

	got := NewTranslator().Translate(blocks)
	assert.Equal(t, "**bold** and `code` and [docs](https://example.com)", got)
}

func TestRenderNumberedListCountsFromOne(t *testing.T) {
	blocks := []*notion.Block{
		notion.NewHeadingBlock(1, []notion.RichTextRun{notion.NewTextRun("Steps")}),
		notion.NewNumberedItemBlock([]notion.RichTextRun{notion.NewTextRun("first")}),
		notion.NewNumberedItemBlock([]notion.RichTextRun{notion.NewTextRun("second")}),
	}

	got := NewTranslator().Translate(blocks)
	assert.Equal(t, "# Steps\n\n1. first\n2. second", got)
}

func TestRenderNestedList(t *testing.T) {
	child := notion.NewBulletedItemBlock([]notion.RichTextRun{notion.NewTextRun("inner")})
	parent := notion.NewBulletedItemBlock([]notion.RichTextRun{notion.NewTextRun("outer")})
	parent.BulletedListItem.Children = []*notion.Block{child}

	got := NewTranslator().Translate([]*notion.Block{parent})
	assert.Equal(t, "- outer\n  - inner", got)
}

func TestRenderNestedNumberedChildrenCountSeparately(t *testing.T) {
	first := notion.NewNumberedItemBlock([]notion.RichTextRun{notion.NewTextRun("a")})
	first.NumberedListItem.Children = []*notion.Block{
		notion.NewNumberedItemBlock([]notion.RichTextRun{notion.NewTextRun("x")}),
		notion.NewNumberedItemBlock([]notion.RichTextRun{notion.NewTextRun("y")}),
	}
	second := notion.NewNumberedItemBlock([]notion.RichTextRun{notion.NewTextRun("b")})

	got := NewTranslator().Translate([]*notion.Block{first, second})
	assert.Equal(t, "1. a\n  1. x\n  2. y\n2. b", got)
}

func TestRenderQuoteSplitsLines(t *testing.T) {
	blocks := []*notion.Block{
		notion.NewQuoteBlock([]notion.RichTextRun{notion.NewTextRun("one\ntwo")}),
	}

	got := NewTranslator().Translate(blocks)
	assert.Equal(t, "> one\n> two", got)
}

// Documents inside the supported subset survive a parse, render, re-parse
// cycle structurally intact.
func TestRoundTripStability(t *testing.T) {
	markdown := `# Report

Intro paragraph with **bold**, *italic*, ~~gone~~, ` + "`code`" + ` and [a link](https://example.com).

## Findings

- first finding
  - supporting detail
  - more detail
- second finding

1. step one
2. step two

> Quoted remark
> over two lines.

| Metric | Value |
| --- | --- |
| latency | 14ms |
| errors | 0 |

$$
\sum_{i=1}^{n} i = \frac{n(n+1)}{2}
$$

` + "```go\nfmt.Println(42)\n```" + `

---

Closing words.`

	parser := md2notion.NewTranslator()
	first := parser.Translate(markdown)
	require.NotEmpty(t, first)

	rendered := NewTranslator().Translate(first)
	second := parser.Translate(rendered)

	require.Equal(t, first, second)
}

func TestRoundTripUnevenTableKeepsHeaderShape(t *testing.T) {
	markdown := `| a | b |
| --- | --- |
| c | d | e |
| f |`

	parser := md2notion.NewTranslator()
	first := parser.Translate(markdown)
	require.Len(t, first, 1)
	require.Equal(t, notion.BlockTable, first[0].Type)
	require.Equal(t, 3, first[0].Table.ColumnCount)

	second := parser.Translate(NewTranslator().Translate(first))
	require.Len(t, second, 1)
	assert.Equal(t, 3, second[0].Table.ColumnCount)
	assert.True(t, second[0].Table.HasHeader)
	require.Equal(t, first, second)
}
