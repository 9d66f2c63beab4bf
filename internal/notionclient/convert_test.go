package notionclient

import (
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/md2notion/internal/export"
	"github.com/studyflow/md2notion/notion"
)

func TestToAPIBlockParagraph(t *testing.T) {
	b := notion.NewParagraphBlock([]notion.RichTextRun{
		notion.NewStyledRun("hi", notion.Annotations{Bold: true}),
	})

	converted := toAPIBlock(b)
	para, ok := converted.(*notionapi.ParagraphBlock)
	require.True(t, ok)
	assert.Equal(t, notionapi.BlockTypeParagraph, para.Type)

	require.Len(t, para.Paragraph.RichText, 1)
	rt := para.Paragraph.RichText[0]
	assert.Equal(t, "hi", rt.Text.Content)
	assert.True(t, rt.Annotations.Bold)
	assert.Equal(t, notionapi.Color(notion.DefaultColor), rt.Annotations.Color)
}

func TestToAPIBlockHeadings(t *testing.T) {
	runs := []notion.RichTextRun{notion.NewTextRun("h")}

	h1, ok := toAPIBlock(notion.NewHeadingBlock(1, runs)).(*notionapi.Heading1Block)
	require.True(t, ok)
	assert.Equal(t, "h", h1.Heading1.RichText[0].Text.Content)

	_, ok = toAPIBlock(notion.NewHeadingBlock(2, runs)).(*notionapi.Heading2Block)
	assert.True(t, ok)
	_, ok = toAPIBlock(notion.NewHeadingBlock(3, runs)).(*notionapi.Heading3Block)
	assert.True(t, ok)
}

func TestToAPIBlockListChildren(t *testing.T) {
	item := notion.NewBulletedItemBlock([]notion.RichTextRun{notion.NewTextRun("outer")})
	item.BulletedListItem.Children = []*notion.Block{
		notion.NewNumberedItemBlock([]notion.RichTextRun{notion.NewTextRun("inner")}),
	}

	converted, ok := toAPIBlock(item).(*notionapi.BulletedListItemBlock)
	require.True(t, ok)
	require.Len(t, converted.BulletedListItem.Children, 1)

	child, ok := converted.BulletedListItem.Children[0].(*notionapi.NumberedListItemBlock)
	require.True(t, ok)
	assert.Equal(t, "inner", child.NumberedListItem.RichText[0].Text.Content)
}

func TestToAPIBlockLink(t *testing.T) {
	b := notion.NewParagraphBlock([]notion.RichTextRun{
		notion.NewLinkRun("docs", "https://example.com"),
	})

	para := toAPIBlock(b).(*notionapi.ParagraphBlock)
	rt := para.Paragraph.RichText[0]
	require.NotNil(t, rt.Text.Link)
	assert.Equal(t, "https://example.com", rt.Text.Link.Url)
}

func TestToAPIBlockTable(t *testing.T) {
	rows := [][][]notion.RichTextRun{
		{{notion.NewTextRun("a")}, {notion.NewTextRun("b")}},
		{{notion.NewTextRun("c")}, {notion.NewTextRun("")}},
	}

	converted, ok := toAPIBlock(notion.NewTableBlock(2, rows)).(*notionapi.TableBlock)
	require.True(t, ok)
	assert.Equal(t, 2, converted.Table.TableWidth)
	assert.True(t, converted.Table.HasColumnHeader)
	require.Len(t, converted.Table.Children, 2)

	row, ok := converted.Table.Children[0].(*notionapi.TableRowBlock)
	require.True(t, ok)
	require.Len(t, row.TableRow.Cells, 2)
	assert.Equal(t, "a", row.TableRow.Cells[0][0].Text.Content)
}

func TestToAPIBlocksSkipsUnknownKinds(t *testing.T) {
	blocks := []*notion.Block{
		{Object: "block", Type: notion.BlockType("bogus")},
		notion.NewDividerBlock(),
	}

	converted := toAPIBlocks(blocks)
	require.Len(t, converted, 1)
	_, ok := converted[0].(*notionapi.DividerBlock)
	assert.True(t, ok)
}

func TestCodeLanguageMapping(t *testing.T) {
	tests := map[string]string{
		"":       "plain text",
		"golang": "go",
		"go":     "go",
		"js":     "javascript",
		"ts":     "typescript",
		"py":     "python",
		"sh":     "shell",
		"rust":   "rust",
	}
	for in, want := range tests {
		assert.Equal(t, want, codeLanguage(in), "input %q", in)
	}
}

func TestTitleProperties(t *testing.T) {
	forPage := titleProperties(export.Parent{ID: "p"}, "Doc")
	require.Contains(t, forPage, "title")

	forDatabase := titleProperties(export.Parent{ID: "db", IsDatabase: true}, "Doc")
	require.Contains(t, forDatabase, "Name")

	prop, ok := forDatabase["Name"].(notionapi.TitleProperty)
	require.True(t, ok)
	require.Len(t, prop.Title, 1)
	assert.Equal(t, "Doc", prop.Title[0].Text.Content)
}
