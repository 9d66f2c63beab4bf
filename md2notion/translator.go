// Package md2notion compiles AI-generated Markdown into a tree of typed
// document blocks. The grammar is a constrained Markdown subset; malformed
// input never fails the parse, it just degrades to plain paragraphs.
package md2notion

import (
	"regexp"
	"strings"

	"github.com/studyflow/md2notion/notion"
)

var (
	headingPattern        = regexp.MustCompile(`^(#{1,4})\s+(.*)$`)
	horizontalRulePattern = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
)

// Translator turns Markdown source into an ordered block list.
type Translator struct {
	handlers []blockHandler
}

// NewTranslator constructs a markdown-to-blocks translator.
func NewTranslator() *Translator {
	return &Translator{handlers: blockHandlers}
}

// parseState carries the output list and the open paragraph buffer across
// the line scan.
type parseState struct {
	blocks []*notion.Block
	para   []string
}

func (st *parseState) emit(blocks ...*notion.Block) {
	st.blocks = append(st.blocks, blocks...)
}

// flushParagraph closes the open paragraph buffer, joining buffered lines
// with newlines into a single paragraph block.
func (st *parseState) flushParagraph() {
	if len(st.para) == 0 {
		return
	}
	st.emit(notion.NewParagraphBlock(Tokenize(strings.Join(st.para, "\n"))))
	st.para = nil
}

// blockHandler pairs a line predicate with the consumer that runs when the
// predicate is the first to match. handle returns the index of the first
// unconsumed line.
type blockHandler struct {
	name           string
	match          func(lines []string, i int) bool
	handle         func(st *parseState, lines []string, i int) int
	keepsParagraph bool // folds into the open paragraph instead of closing it
}

// blockHandlers is the recognition priority table. Order is a contract:
// each line is tested top to bottom and the first match consumes it, so a
// `---` line is a table separator only via the table lookahead, a rule
// otherwise, and never a paragraph.
var blockHandlers = []blockHandler{
	{
		name: "equation",
		match: func(lines []string, i int) bool {
			trimmed := strings.TrimSpace(lines[i])
			return strings.HasPrefix(trimmed, "$$") || strings.HasPrefix(trimmed, `\[`)
		},
		handle: handleEquation,
	},
	{
		name: "code-fence",
		match: func(lines []string, i int) bool {
			return strings.HasPrefix(strings.TrimSpace(lines[i]), "```")
		},
		handle: handleCodeFence,
	},
	{
		name: "bare-math",
		match: func(lines []string, i int) bool {
			return IsBareMathLine(lines[i])
		},
		handle: func(st *parseState, lines []string, i int) int {
			st.emit(notion.NewEquationBlock(strings.TrimSpace(lines[i])))
			return i + 1
		},
	},
	{
		// Indented code has no block kind of its own: the line is
		// de-indented and folded into the paragraph buffer as plain text.
		name: "indented-code",
		match: func(lines []string, i int) bool {
			return isIndentedCodeLine(lines[i])
		},
		handle: func(st *parseState, lines []string, i int) int {
			st.para = append(st.para, deindentCodeLine(lines[i]))
			return i + 1
		},
		keepsParagraph: true,
	},
	{
		name: "table",
		match: func(lines []string, i int) bool {
			return strings.Contains(lines[i], "|") &&
				i+1 < len(lines) && isTableSeparator(lines[i+1])
		},
		handle: func(st *parseState, lines []string, i int) int {
			table, next := parseTable(lines, i)
			st.emit(table)
			return next
		},
	},
	{
		name: "horizontal-rule",
		match: func(lines []string, i int) bool {
			return horizontalRulePattern.MatchString(strings.TrimSpace(lines[i]))
		},
		handle: func(st *parseState, lines []string, i int) int {
			st.emit(notion.NewDividerBlock())
			return i + 1
		},
	},
	{
		name: "heading",
		match: func(lines []string, i int) bool {
			return headingPattern.MatchString(lines[i])
		},
		handle: func(st *parseState, lines []string, i int) int {
			groups := headingPattern.FindStringSubmatch(lines[i])
			st.emit(notion.NewHeadingBlock(len(groups[1]), Tokenize(groups[2])))
			return i + 1
		},
	},
	{
		name: "quote",
		match: func(lines []string, i int) bool {
			return strings.HasPrefix(strings.TrimSpace(lines[i]), ">")
		},
		handle: handleQuote,
	},
	{
		name: "bulleted-list",
		match: func(lines []string, i int) bool {
			return bulletItemPattern.MatchString(lines[i])
		},
		handle: func(st *parseState, lines []string, i int) int {
			items, next := parseList(lines, i, true)
			st.emit(items...)
			return next
		},
	},
	{
		name: "numbered-list",
		match: func(lines []string, i int) bool {
			return numberedItemPattern.MatchString(lines[i])
		},
		handle: func(st *parseState, lines []string, i int) int {
			items, next := parseList(lines, i, false)
			st.emit(items...)
			return next
		},
	},
}

// Translate parses markdown into an ordered, flat list of blocks in a
// single forward pass. It never fails: unrecognized structure accumulates
// into paragraphs.
func (t *Translator) Translate(markdown string) []*notion.Block {
	lines := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")

	st := &parseState{blocks: []*notion.Block{}}
	i := 0
	for i < len(lines) {
		handled := false
		for _, h := range t.handlers {
			if !h.match(lines, i) {
				continue
			}
			if !h.keepsParagraph {
				st.flushParagraph()
			}
			i = h.handle(st, lines, i)
			handled = true
			break
		}
		if handled {
			continue
		}

		if strings.TrimSpace(lines[i]) == "" {
			st.flushParagraph()
		} else {
			st.para = append(st.para, lines[i])
		}
		i++
	}
	st.flushParagraph()

	return st.blocks
}

func isIndentedCodeLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "    ")
}

func deindentCodeLine(line string) string {
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}
	return strings.TrimPrefix(line, "    ")
}

// handleEquation consumes a $$...$$ fence or \[...\] display block, single-
// or multi-line, and emits one equation block.
func handleEquation(st *parseState, lines []string, i int) int {
	trimmed := strings.TrimSpace(lines[i])

	open, close := "$$", "$$"
	if strings.HasPrefix(trimmed, `\[`) {
		open, close = `\[`, `\]`
	}

	rest := strings.TrimPrefix(trimmed, open)
	if inner := strings.TrimSuffix(rest, close); strings.HasSuffix(rest, close) && inner != rest {
		// Single line: $$x=1$$ or \[x=1\].
		st.emit(notion.NewEquationBlock(strings.TrimSpace(inner)))
		return i + 1
	}

	parts := []string{}
	if strings.TrimSpace(rest) != "" {
		parts = append(parts, strings.TrimSpace(rest))
	}
	i++
	for i < len(lines) {
		trimmed = strings.TrimSpace(lines[i])
		if strings.HasSuffix(trimmed, close) {
			if inner := strings.TrimSpace(strings.TrimSuffix(trimmed, close)); inner != "" {
				parts = append(parts, inner)
			}
			i++
			break
		}
		parts = append(parts, trimmed)
		i++
	}
	st.emit(notion.NewEquationBlock(strings.Join(parts, "\n")))
	return i
}

// handleCodeFence consumes a ``` fence with an optional language tag.
func handleCodeFence(st *parseState, lines []string, i int) int {
	language := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), "```"))

	body := []string{}
	i++
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			i++
			break
		}
		body = append(body, lines[i])
		i++
	}
	st.emit(notion.NewCodeBlock(strings.Join(body, "\n"), language))
	return i
}

// handleQuote consumes consecutive > lines into one quote block, joining
// them with newlines. A bare > continues the quote with an empty line.
func handleQuote(st *parseState, lines []string, i int) int {
	body := []string{}
	for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), ">") {
		body = append(body, stripQuoteMarker(lines[i]))
		i++
	}
	st.emit(notion.NewQuoteBlock(Tokenize(strings.Join(body, "\n"))))
	return i
}

func stripQuoteMarker(line string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(line), ">")
	return strings.TrimPrefix(trimmed, " ")
}
