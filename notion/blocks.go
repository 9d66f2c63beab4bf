package notion

import (
	"encoding/json"
	"slices"
	"strings"
)

// BlockType is a Notion-style block kind.
type BlockType string

// Block types.
const (
	BlockParagraph        = BlockType("paragraph")
	BlockHeading1         = BlockType("heading_1")
	BlockHeading2         = BlockType("heading_2")
	BlockHeading3         = BlockType("heading_3")
	BlockBulletedListItem = BlockType("bulleted_list_item")
	BlockNumberedListItem = BlockType("numbered_list_item")
	BlockQuote            = BlockType("quote")
	BlockCode             = BlockType("code")
	BlockDivider          = BlockType("divider")
	BlockEquation         = BlockType("equation")
	BlockTable            = BlockType("table")
)

// Block is one node of a parsed document. Exactly one payload field is
// populated, matching Type; the JSON shape is
// { "object": "block", "type": <kind>, <kind>: {...} }.
type Block struct {
	Object string    `json:"object"`
	Type   BlockType `json:"type"`

	Paragraph        *RichTextContent `json:"paragraph,omitempty"`
	Heading1         *HeadingContent  `json:"heading_1,omitempty"`
	Heading2         *HeadingContent  `json:"heading_2,omitempty"`
	Heading3         *HeadingContent  `json:"heading_3,omitempty"`
	BulletedListItem *ListItemContent `json:"bulleted_list_item,omitempty"`
	NumberedListItem *ListItemContent `json:"numbered_list_item,omitempty"`
	Quote            *RichTextContent `json:"quote,omitempty"`
	Code             *CodeContent     `json:"code,omitempty"`
	Divider          *DividerContent  `json:"divider,omitempty"`
	Equation         *EquationContent `json:"equation,omitempty"`
	Table            *TableContent    `json:"table,omitempty"`
}

// RichTextContent is the payload of paragraph and quote blocks.
type RichTextContent struct {
	RichText []RichTextRun `json:"rich_text"`
}

// HeadingContent is the payload of heading_1..heading_3 blocks.
type HeadingContent struct {
	RichText []RichTextRun `json:"rich_text"`
}

// ListItemContent is the payload of list item blocks. Children holds the
// deeper-indented items that immediately follow this one in the source.
type ListItemContent struct {
	RichText []RichTextRun `json:"rich_text"`
	Children []*Block      `json:"children,omitempty"`
}

// CodeContent is the payload of code blocks.
type CodeContent struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// DividerContent is the (empty) payload of divider blocks.
type DividerContent struct{}

// EquationContent is the payload of equation blocks.
type EquationContent struct {
	Expression string `json:"expression"`
}

// TableContent is the payload of table blocks. Rows is rectangular: every
// row is padded to ColumnCount cells, each cell a run sequence.
type TableContent struct {
	ColumnCount int             `json:"column_count"`
	HasHeader   bool            `json:"has_header"`
	Rows        [][][]RichTextRun `json:"rows"`
}

// ContainerBlocks returns the block kinds that carry nested children.
func ContainerBlocks() []BlockType {
	return []BlockType{
		BlockBulletedListItem,
		BlockNumberedListItem,
	}
}

// IsContainerBlock checks whether the kind can carry nested children.
func IsContainerBlock(kind BlockType) bool {
	return slices.Contains(ContainerBlocks(), kind)
}

// Create a paragraph block
func NewParagraphBlock(runs []RichTextRun) *Block {
	return &Block{
		Object:    "block",
		Type:      BlockParagraph,
		Paragraph: &RichTextContent{RichText: runs},
	}
}

// Create a heading block. Levels above 3 collapse to 3; the destination
// format has no deeper heading.
func NewHeadingBlock(level int, runs []RichTextRun) *Block {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}

	b := &Block{Object: "block"}
	switch level {
	case 1:
		b.Type = BlockHeading1
		b.Heading1 = &HeadingContent{RichText: runs}
	case 2:
		b.Type = BlockHeading2
		b.Heading2 = &HeadingContent{RichText: runs}
	case 3:
		b.Type = BlockHeading3
		b.Heading3 = &HeadingContent{RichText: runs}
	}
	return b
}

// Create a bulleted list item block
func NewBulletedItemBlock(runs []RichTextRun) *Block {
	return &Block{
		Object:           "block",
		Type:             BlockBulletedListItem,
		BulletedListItem: &ListItemContent{RichText: runs, Children: []*Block{}},
	}
}

// Create a numbered list item block
func NewNumberedItemBlock(runs []RichTextRun) *Block {
	return &Block{
		Object:           "block",
		Type:             BlockNumberedListItem,
		NumberedListItem: &ListItemContent{RichText: runs, Children: []*Block{}},
	}
}

// Create a quote block
func NewQuoteBlock(runs []RichTextRun) *Block {
	return &Block{
		Object: "block",
		Type:   BlockQuote,
		Quote:  &RichTextContent{RichText: runs},
	}
}

// Create a code block
func NewCodeBlock(text, language string) *Block {
	return &Block{
		Object: "block",
		Type:   BlockCode,
		Code:   &CodeContent{Text: text, Language: language},
	}
}

// Create a divider block
func NewDividerBlock() *Block {
	return &Block{
		Object:  "block",
		Type:    BlockDivider,
		Divider: &DividerContent{},
	}
}

// Create an equation block
func NewEquationBlock(expression string) *Block {
	return &Block{
		Object:   "block",
		Type:     BlockEquation,
		Equation: &EquationContent{Expression: expression},
	}
}

// Create a table block
func NewTableBlock(columnCount int, rows [][][]RichTextRun) *Block {
	return &Block{
		Object: "block",
		Type:   BlockTable,
		Table: &TableContent{
			ColumnCount: columnCount,
			HasHeader:   true,
			Rows:        rows,
		},
	}
}

// RichText returns the run sequence of the block, or nil for kinds that
// carry none (code, divider, equation, table).
func (b *Block) RichText() []RichTextRun {
	switch b.Type {
	case BlockParagraph:
		return b.Paragraph.RichText
	case BlockHeading1:
		return b.Heading1.RichText
	case BlockHeading2:
		return b.Heading2.RichText
	case BlockHeading3:
		return b.Heading3.RichText
	case BlockBulletedListItem:
		return b.BulletedListItem.RichText
	case BlockNumberedListItem:
		return b.NumberedListItem.RichText
	case BlockQuote:
		return b.Quote.RichText
	}
	return nil
}

// Children returns nested child blocks for container kinds.
func (b *Block) Children() []*Block {
	switch b.Type {
	case BlockBulletedListItem:
		return b.BulletedListItem.Children
	case BlockNumberedListItem:
		return b.NumberedListItem.Children
	}
	return nil
}

// HeadingLevel returns 1..3 for heading blocks and 0 otherwise.
func (b *Block) HeadingLevel() int {
	switch b.Type {
	case BlockHeading1:
		return 1
	case BlockHeading2:
		return 2
	case BlockHeading3:
		return 3
	}
	return 0
}

// PlainText returns the textual content of the block with styling and
// block-marker syntax stripped, children included.
func (b *Block) PlainText() string {
	var sb strings.Builder
	for _, run := range b.RichText() {
		sb.WriteString(run.Text.Content)
	}
	switch b.Type {
	case BlockCode:
		sb.WriteString(b.Code.Text)
	case BlockEquation:
		sb.WriteString(b.Equation.Expression)
	case BlockTable:
		for _, row := range b.Table.Rows {
			for _, cell := range row {
				for _, run := range cell {
					sb.WriteString(run.Text.Content)
				}
			}
		}
	}
	for _, child := range b.Children() {
		sb.WriteString("\n")
		sb.WriteString(child.PlainText())
	}
	return sb.String()
}

// ToJSON renders a block list as indented JSON.
func ToJSON(blocks []*Block) ([]byte, error) {
	return json.MarshalIndent(blocks, "", "  ")
}
