package md2notion

import (
	"strings"

	"github.com/studyflow/md2notion/notion"
)

// Tokenize parses one line of text into styled runs. The scan is a greedy
// left-to-right pass: at each position the patterns below are tried in
// order and the first match is consumed; otherwise one character is taken
// as literal text. The ordering is a tie-break contract, not a convenience:
// ** must be seen before * or bold text turns into two italics.
//
//	1. inline code    `text`
//	2. inline math    $text$   (unless it opens a $$ fence)
//	3. link           [text](url)
//	4. strikethrough  ~~text~~
//	5. bold           **text**
//	6. italic         *text*
//
// Unmatched delimiters fall through as literal text; the tokenizer never
// fails and always returns at least one run.
func Tokenize(line string) []notion.RichTextRun {
	runs := []notion.RichTextRun{}
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, notion.NewTextRun(plain.String()))
			plain.Reset()
		}
	}

	i := 0
	for i < len(line) {
		switch {
		case line[i] == '`':
			content, next, ok := matchSpan(line, i, "`", "`")
			if ok {
				flush()
				runs = append(runs, codeRun(content))
				i = next
				continue
			}

		case line[i] == '$' && !strings.HasPrefix(line[i:], "$$"):
			content, next, ok := matchSpan(line, i, "$", "$")
			if ok && content != "" {
				flush()
				// No distinct math run kind exists downstream; inline
				// math renders as a code-annotated run.
				runs = append(runs, codeRun(content))
				i = next
				continue
			}

		case line[i] == '[':
			text, url, next, ok := matchLink(line, i)
			if ok {
				flush()
				runs = append(runs, notion.NewLinkRun(text, url))
				i = next
				continue
			}

		case strings.HasPrefix(line[i:], "~~"):
			content, next, ok := matchSpan(line, i, "~~", "~~")
			if ok {
				flush()
				runs = append(runs, styledRun(content, func(a *notion.Annotations) { a.Strikethrough = true }))
				i = next
				continue
			}

		case strings.HasPrefix(line[i:], "**"):
			content, next, ok := matchSpan(line, i, "**", "**")
			if ok {
				flush()
				runs = append(runs, styledRun(content, func(a *notion.Annotations) { a.Bold = true }))
				i = next
				continue
			}

		case line[i] == '*':
			content, next, ok := matchSpan(line, i, "*", "*")
			if ok {
				flush()
				runs = append(runs, styledRun(content, func(a *notion.Annotations) { a.Italic = true }))
				i = next
				continue
			}
		}

		plain.WriteByte(line[i])
		i++
	}
	flush()

	// An entirely empty line still yields one contentless run; consumers
	// rely on run sequences never being empty.
	if len(runs) == 0 {
		runs = append(runs, notion.NewTextRun(""))
	}
	return runs
}

// matchSpan matches open+content+close starting at i and returns the inner
// content and the index just past the closing delimiter.
func matchSpan(line string, i int, open, close string) (string, int, bool) {
	if !strings.HasPrefix(line[i:], open) {
		return "", 0, false
	}
	start := i + len(open)
	end := strings.Index(line[start:], close)
	if end < 0 {
		return "", 0, false
	}
	return line[start : start+end], start + end + len(close), true
}

// matchLink matches [text](url) starting at i.
func matchLink(line string, i int) (text, url string, next int, ok bool) {
	closeBracket := strings.Index(line[i:], "](")
	if closeBracket < 0 {
		return "", "", 0, false
	}
	closeBracket += i
	closeParen := strings.Index(line[closeBracket+2:], ")")
	if closeParen < 0 {
		return "", "", 0, false
	}
	closeParen += closeBracket + 2
	return line[i+1 : closeBracket], line[closeBracket+2 : closeParen], closeParen + 1, true
}

func codeRun(content string) notion.RichTextRun {
	return styledRun(content, func(a *notion.Annotations) { a.Code = true })
}

func styledRun(content string, style func(*notion.Annotations)) notion.RichTextRun {
	annotations := notion.NewAnnotations()
	style(&annotations)
	return notion.NewStyledRun(content, annotations)
}
