package notion

// RichTextRun is one styled run of text inside a block. Wire shape:
// { "type": "text", "text": {"content": ..., "link": {...}}, "annotations": {...} }.
type RichTextRun struct {
	Type        string      `json:"type"`
	Text        TextData    `json:"text"`
	Annotations Annotations `json:"annotations"`
}

// TextData holds the run content and an optional link.
type TextData struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is a run-level hyperlink.
type Link struct {
	URL string `json:"url"`
}

// Annotations carry the styling flags of a run. Color is always serialized;
// "default" means unstyled.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// DefaultColor is the unstyled annotation color.
const DefaultColor = "default"

// NewAnnotations returns the zero styling with the default color set.
func NewAnnotations() Annotations {
	return Annotations{Color: DefaultColor}
}

// Create a plain text run
func NewTextRun(content string) RichTextRun {
	return RichTextRun{
		Type:        "text",
		Text:        TextData{Content: content},
		Annotations: NewAnnotations(),
	}
}

// Create a styled text run
func NewStyledRun(content string, annotations Annotations) RichTextRun {
	if annotations.Color == "" {
		annotations.Color = DefaultColor
	}
	return RichTextRun{
		Type:        "text",
		Text:        TextData{Content: content},
		Annotations: annotations,
	}
}

// Create a link run
func NewLinkRun(content, url string) RichTextRun {
	return RichTextRun{
		Type:        "text",
		Text:        TextData{Content: content, Link: &Link{URL: url}},
		Annotations: NewAnnotations(),
	}
}
