// Package server exposes the export pipeline over HTTP, streaming progress
// back as newline-delimited JSON on the response body.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/studyflow/md2notion/internal/export"
	"github.com/studyflow/md2notion/md2notion"
)

// Server handles export requests.
type Server struct {
	exporter *export.Exporter
	log      zerolog.Logger
}

// New constructs a server around an exporter.
func New(exporter *export.Exporter, log zerolog.Logger) *Server {
	return &Server{exporter: exporter, log: log}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/exports", s.handleExport)
	return mux
}

type exportRequest struct {
	Markdown string `json:"markdown"`
	ParentID string `json:"parentId"`
	Title    string `json:"title"`
}

// handleExport parses the markdown payload and runs the upload, writing one
// progress event per line as it goes. Errors past the header are reported
// in-stream as a terminal error event; aborting the request between chunks
// can leave a partially exported document behind, which is the documented
// contract of the uploader.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ParentID == "" {
		http.Error(w, "parentId is required", http.StatusBadRequest)
		return
	}

	jobID := uuid.NewString()
	log := s.log.With().Str("job_id", jobID).Str("parent", req.ParentID).Logger()
	log.Info().Int("markdown_bytes", len(req.Markdown)).Msg("export requested")

	blocks := md2notion.NewTranslator().Translate(req.Markdown)

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("X-Export-Job", jobID)
	w.WriteHeader(http.StatusOK)

	stream := export.NewStreamWriter(w)
	_, err := s.exporter.Export(r.Context(), req.ParentID, req.Title, blocks, func(ev export.Event) {
		if werr := stream.Write(ev); werr != nil {
			log.Warn().Err(werr).Msg("progress write failed")
		}
	})
	if err != nil {
		// Already emitted in-stream as the terminal error event.
		log.Error().Err(err).Msg("export failed")
		return
	}
	log.Info().Msg("export completed")
}
