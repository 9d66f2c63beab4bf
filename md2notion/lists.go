package md2notion

import (
	"regexp"
	"strings"

	"github.com/studyflow/md2notion/notion"
)

var (
	bulletItemPattern   = regexp.MustCompile(`^\s*[-*+]\s+`)
	numberedItemPattern = regexp.MustCompile(`^\s*\d+[.)]\s+`)
)

func isListItemLine(line string) bool {
	return bulletItemPattern.MatchString(line) || numberedItemPattern.MatchString(line)
}

// indentLevel measures list nesting depth: tabs count as two spaces, two
// spaces make one level.
func indentLevel(line string) int {
	spaces := 0
	for _, r := range line {
		switch r {
		case '\t':
			spaces += 2
		case ' ':
			spaces++
		default:
			return spaces / 2
		}
	}
	return spaces / 2
}

// listItemText strips the leading marker from a list item line.
func listItemText(line string, bulleted bool) string {
	pattern := bulletItemPattern
	if !bulleted {
		pattern = numberedItemPattern
	}
	return pattern.ReplaceAllString(line, "")
}

// parseList consumes consecutive list item lines at the indentation level of
// lines[start], recursing into any deeper-indented run that follows an item.
// It returns the parsed items and the index of the first unconsumed line.
//
// The base level is captured from the starting line; the scan stops at a
// blank line, a non-list line, a shallower line, or a same-level item of the
// other list type (the caller re-enters for that one). Each nested run
// re-detects bullet vs numbered, so list types may differ per depth.
func parseList(lines []string, start int, bulleted bool) ([]*notion.Block, int) {
	blocks := []*notion.Block{}
	baseLevel := indentLevel(lines[start])

	i := start
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" || !isListItemLine(line) {
			break
		}
		level := indentLevel(line)
		if level < baseLevel {
			break
		}
		if level > baseLevel {
			// Deeper runs are consumed by the lookahead below; reaching
			// one here means the preceding sibling belonged to the other
			// list type and this run is the caller's to handle.
			break
		}
		if bulletItemPattern.MatchString(line) != bulleted {
			break
		}

		runs := Tokenize(listItemText(line, bulleted))
		var item *notion.Block
		if bulleted {
			item = notion.NewBulletedItemBlock(runs)
		} else {
			item = notion.NewNumberedItemBlock(runs)
		}

		// Attach any immediately following deeper-indented runs as
		// children, one recursive parse per run of a single list type.
		i++
		children := []*notion.Block{}
		for i < len(lines) && isListItemLine(lines[i]) && indentLevel(lines[i]) > baseLevel {
			nested, next := parseList(lines, i, bulletItemPattern.MatchString(lines[i]))
			if next == i {
				break
			}
			children = append(children, nested...)
			i = next
		}
		if bulleted {
			item.BulletedListItem.Children = children
		} else {
			item.NumberedListItem.Children = children
		}

		blocks = append(blocks, item)
	}

	return blocks, i
}
