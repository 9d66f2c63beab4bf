package notionclient

import (
	"github.com/jomei/notionapi"

	"github.com/studyflow/md2notion/notion"
)

// toAPIBlocks converts a parsed block list to SDK request blocks, children
// included. Kinds the SDK cannot represent have already been degraded by
// the exporter; anything unexpected is skipped rather than failing the
// upload.
func toAPIBlocks(blocks []*notion.Block) []notionapi.Block {
	out := make([]notionapi.Block, 0, len(blocks))
	for _, b := range blocks {
		if converted := toAPIBlock(b); converted != nil {
			out = append(out, converted)
		}
	}
	return out
}

func basicBlock(kind notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{
		Object: notionapi.ObjectTypeBlock,
		Type:   kind,
	}
}

func toAPIBlock(b *notion.Block) notionapi.Block {
	switch b.Type {
	case notion.BlockParagraph:
		return &notionapi.ParagraphBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeParagraph),
			Paragraph: notionapi.Paragraph{
				RichText: toAPIRichText(b.Paragraph.RichText),
			},
		}

	case notion.BlockHeading1:
		return &notionapi.Heading1Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading1),
			Heading1:   notionapi.Heading{RichText: toAPIRichText(b.Heading1.RichText)},
		}

	case notion.BlockHeading2:
		return &notionapi.Heading2Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading2),
			Heading2:   notionapi.Heading{RichText: toAPIRichText(b.Heading2.RichText)},
		}

	case notion.BlockHeading3:
		return &notionapi.Heading3Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading3),
			Heading3:   notionapi.Heading{RichText: toAPIRichText(b.Heading3.RichText)},
		}

	case notion.BlockBulletedListItem:
		return &notionapi.BulletedListItemBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeBulletedListItem),
			BulletedListItem: notionapi.ListItem{
				RichText: toAPIRichText(b.BulletedListItem.RichText),
				Children: toAPIBlocks(b.BulletedListItem.Children),
			},
		}

	case notion.BlockNumberedListItem:
		return &notionapi.NumberedListItemBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeNumberedListItem),
			NumberedListItem: notionapi.ListItem{
				RichText: toAPIRichText(b.NumberedListItem.RichText),
				Children: toAPIBlocks(b.NumberedListItem.Children),
			},
		}

	case notion.BlockQuote:
		return &notionapi.QuoteBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeQuote),
			Quote:      notionapi.Quote{RichText: toAPIRichText(b.Quote.RichText)},
		}

	case notion.BlockCode:
		return &notionapi.CodeBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeCode),
			Code: notionapi.Code{
				RichText: []notionapi.RichText{plainRichText(b.Code.Text)},
				Language: codeLanguage(b.Code.Language),
			},
		}

	case notion.BlockDivider:
		return &notionapi.DividerBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeDivider),
			Divider:    notionapi.Divider{},
		}

	case notion.BlockEquation:
		return &notionapi.EquationBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeEquation),
			Equation:   notionapi.Equation{Expression: b.Equation.Expression},
		}

	case notion.BlockTable:
		return toAPITable(b.Table)
	}

	return nil
}

func toAPITable(table *notion.TableContent) notionapi.Block {
	rows := make([]notionapi.Block, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([][]notionapi.RichText, 0, len(row))
		for _, cell := range row {
			cells = append(cells, toAPIRichText(cell))
		}
		rows = append(rows, &notionapi.TableRowBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeTableRowBlock),
			TableRow:   notionapi.TableRow{Cells: cells},
		})
	}

	return &notionapi.TableBlock{
		BasicBlock: basicBlock(notionapi.BlockTypeTableBlock),
		Table: notionapi.Table{
			TableWidth:      table.ColumnCount,
			HasColumnHeader: table.HasHeader,
			Children:        rows,
		},
	}
}

func toAPIRichText(runs []notion.RichTextRun) []notionapi.RichText {
	out := make([]notionapi.RichText, 0, len(runs))
	for _, run := range runs {
		rt := notionapi.RichText{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: run.Text.Content},
			Annotations: &notionapi.Annotations{
				Bold:          run.Annotations.Bold,
				Italic:        run.Annotations.Italic,
				Strikethrough: run.Annotations.Strikethrough,
				Underline:     run.Annotations.Underline,
				Code:          run.Annotations.Code,
				Color:         notionapi.Color(run.Annotations.Color),
			},
		}
		if run.Text.Link != nil {
			rt.Text.Link = &notionapi.Link{Url: run.Text.Link.URL}
		}
		out = append(out, rt)
	}
	return out
}

// codeLanguage maps onto the language tags the destination accepts; an
// unknown or empty tag ships as plain text.
func codeLanguage(lang string) string {
	if lang == "" {
		return "plain text"
	}
	switch lang {
	case "golang":
		return "go"
	case "js":
		return "javascript"
	case "ts":
		return "typescript"
	case "py":
		return "python"
	case "sh", "zsh":
		return "shell"
	}
	return lang
}
