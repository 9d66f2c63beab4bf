package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/md2notion/internal/export"
	"github.com/studyflow/md2notion/notion"
)

type stubDestination struct {
	createErr error
	created   []*notion.Block
	appended  int
}

func (s *stubDestination) LookupDatabase(ctx context.Context, id string) error {
	return errors.New("not a database")
}

func (s *stubDestination) CreatePage(ctx context.Context, parent export.Parent, title string, children []*notion.Block) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.created = children
	return "page-1", nil
}

func (s *stubDestination) AppendChildren(ctx context.Context, pageID string, children []*notion.Block) error {
	s.appended++
	return nil
}

func newTestServer(dest export.Destination) *Server {
	return New(export.NewExporter(dest), zerolog.Nop())
}

func postExport(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/exports", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeEvents(t *testing.T, body string) []export.Event {
	t.Helper()
	var events []export.Event
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		var ev export.Event
		require.NoError(t, json.Unmarshal([]byte(line), &ev), "line %q", line)
		events = append(events, ev)
	}
	return events
}

func TestHandleExportStreamsProgress(t *testing.T) {
	dest := &stubDestination{}
	rec := postExport(t, newTestServer(dest), `{"markdown":"# Hi\n\ntext","parentId":"p1","title":"Doc"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-ndjson", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Export-Job"))

	events := decodeEvents(t, rec.Body.String())
	require.Len(t, events, 3)
	assert.Equal(t, export.EventStarted, events[0].Type)
	assert.Equal(t, 2, events[0].TotalBlocks)
	assert.Equal(t, export.EventChunk, events[1].Type)
	assert.Equal(t, export.EventDone, events[2].Type)
	assert.Equal(t, "page-1", events[2].PageID)

	require.Len(t, dest.created, 2)
	assert.Equal(t, notion.BlockHeading1, dest.created[0].Type)
}

func TestHandleExportUploadErrorReportedInStream(t *testing.T) {
	dest := &stubDestination{createErr: errors.New("upstream down")}
	rec := postExport(t, newTestServer(dest), `{"markdown":"text","parentId":"p1"}`)

	// Headers are already out; the failure arrives as the terminal event.
	assert.Equal(t, http.StatusOK, rec.Code)

	events := decodeEvents(t, rec.Body.String())
	require.Len(t, events, 2)
	assert.Equal(t, export.EventError, events[1].Type)
	assert.Contains(t, events[1].Message, "upstream down")
}

func TestHandleExportRejectsMissingParent(t *testing.T) {
	rec := postExport(t, newTestServer(&stubDestination{}), `{"markdown":"text"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportRejectsBadJSON(t *testing.T) {
	rec := postExport(t, newTestServer(&stubDestination{}), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerMethodRouting(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/exports", nil)
	rec := httptest.NewRecorder()
	newTestServer(&stubDestination{}).Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
