package export

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
)

// StreamWriter serializes events as newline-delimited JSON, one object per
// line, flushing after each event when the underlying writer supports it so
// HTTP consumers see progress as it happens.
type StreamWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStreamWriter wraps w for NDJSON event output.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// Write emits one event line.
func (s *StreamWriter) Write(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := s.w.Write(append(data, '\n')); err != nil {
		return err
	}
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
