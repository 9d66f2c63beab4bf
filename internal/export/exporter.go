// Package export uploads a parsed block tree to a destination workspace in
// size-limited chunks, reporting progress as an ordered event sequence.
package export

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/studyflow/md2notion/notion"
)

// DefaultChunkSize is the destination API's limit on children per call.
// Inherited from the collaborator, not inherent to the compiler; override
// via WithChunkSize.
const DefaultChunkSize = 100

// Exporter drives the chunked upload of a block list.
type Exporter struct {
	dest      Destination
	chunkSize int
	log       zerolog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithChunkSize overrides the per-call block limit.
func WithChunkSize(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Exporter) {
		e.log = log
	}
}

// NewExporter constructs an exporter targeting dest.
func NewExporter(dest Destination, opts ...Option) *Exporter {
	e := &Exporter{
		dest:      dest,
		chunkSize: DefaultChunkSize,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export creates a document under parentID and uploads blocks into it,
// strictly in source order. Calls are sequential on purpose: every chunk
// mutates the same remote document and later chunks append as siblings of
// earlier ones, so concurrency would risk interleaved children.
//
// onEvent receives started, one chunk per successful call (the create call
// included), then done; on failure an error event is emitted and the error
// returned. Nothing already uploaded is rolled back, so a failed or aborted
// export can leave a partial document behind.
func (e *Exporter) Export(ctx context.Context, parentID, title string, blocks []*notion.Block, onEvent func(Event)) (string, error) {
	emit := func(ev Event) {
		if onEvent != nil {
			onEvent(ev)
		}
	}
	fail := func(err error) (string, error) {
		err = fmt.Errorf("export failed: %w", err)
		e.log.Error().Err(err).Str("parent", parentID).Msg("export aborted")
		emit(Event{Type: EventError, Message: err.Error()})
		return "", err
	}

	prepared := degradeUnsupported(blocks)
	chunks := splitChunks(prepared, e.chunkSize)

	emit(Event{Type: EventStarted, TotalBlocks: len(prepared), TotalChunks: len(chunks)})
	e.log.Info().
		Int("blocks", len(prepared)).
		Int("chunks", len(chunks)).
		Str("parent", parentID).
		Msg("export started")

	parent := e.resolveParent(ctx, parentID)

	pageID, err := e.dest.CreatePage(ctx, parent, title, chunks[0])
	if err != nil {
		return fail(err)
	}
	emit(Event{Type: EventChunk, Index: 1, TotalChunks: len(chunks)})

	for i, chunk := range chunks[1:] {
		if err := e.dest.AppendChildren(ctx, pageID, chunk); err != nil {
			return fail(err)
		}
		emit(Event{Type: EventChunk, Index: i + 2, TotalChunks: len(chunks)})
	}

	emit(Event{Type: EventDone, PageID: pageID})
	e.log.Info().Str("page_id", pageID).Msg("export finished")
	return pageID, nil
}

// resolveParent decides whether parentID names a database or a plain page:
// the database lookup is attempted first and any failure means the id is
// treated as a direct parent page.
func (e *Exporter) resolveParent(ctx context.Context, parentID string) Parent {
	if err := e.dest.LookupDatabase(ctx, parentID); err != nil {
		e.log.Debug().Err(err).Str("parent", parentID).Msg("not a database, treating as page")
		return Parent{ID: parentID}
	}
	return Parent{ID: parentID, IsDatabase: true}
}

// degradeUnsupported rewrites block kinds the destination cannot accept.
// Equation blocks become latex code blocks; content is never dropped. The
// parsed tree itself stays untouched.
func degradeUnsupported(blocks []*notion.Block) []*notion.Block {
	out := make([]*notion.Block, len(blocks))
	for i, b := range blocks {
		if b.Type == notion.BlockEquation {
			out[i] = notion.NewCodeBlock(b.Equation.Expression, "latex")
		} else {
			out[i] = b
		}
	}
	return out
}

// splitChunks slices the block list into runs of at most size top-level
// blocks. Nested children travel with their parent and do not count against
// the limit. An empty list still yields one (empty) chunk so the document
// itself gets created.
func splitChunks(blocks []*notion.Block, size int) [][]*notion.Block {
	if len(blocks) == 0 {
		return [][]*notion.Block{{}}
	}
	chunks := make([][]*notion.Block, 0, (len(blocks)+size-1)/size)
	for start := 0; start < len(blocks); start += size {
		end := min(start+size, len(blocks))
		chunks = append(chunks, blocks[start:end])
	}
	return chunks
}
