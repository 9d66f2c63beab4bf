package export

// Event kinds emitted while an export runs.
const (
	EventStarted = "started"
	EventChunk   = "chunk"
	EventDone    = "done"
	EventError   = "error"
)

// Event is one progress notification. Serialized as newline-delimited JSON
// for streaming consumers; Type discriminates which fields are set.
//
//	{"type":"started","totalBlocks":B,"totalChunks":N}
//	{"type":"chunk","index":I,"totalChunks":N}
//	{"type":"done","pageId":"<id>"}
//	{"type":"error","message":"<text>"}
//
// done and error are terminal and emitted exactly once; error is terminal
// for consumers regardless of any bytes that follow.
type Event struct {
	Type        string `json:"type"`
	TotalBlocks int    `json:"totalBlocks,omitempty"`
	TotalChunks int    `json:"totalChunks,omitempty"`
	Index       int    `json:"index,omitempty"`
	PageID      string `json:"pageId,omitempty"`
	Message     string `json:"message,omitempty"`
}
