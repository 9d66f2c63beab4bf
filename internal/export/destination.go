package export

import (
	"context"

	"github.com/studyflow/md2notion/notion"
)

// Parent identifies where a document is created: directly under a page, or
// as an entry of a database/container.
type Parent struct {
	ID         string
	IsDatabase bool
}

// Destination is the document workspace the exporter uploads to. Create and
// append calls accept at most one chunk of top-level blocks each.
type Destination interface {
	// LookupDatabase checks whether id refers to a database/container.
	LookupDatabase(ctx context.Context, id string) error

	// CreatePage creates the destination document with its first batch of
	// children and returns the new document id.
	CreatePage(ctx context.Context, parent Parent, title string, children []*notion.Block) (string, error)

	// AppendChildren appends a batch of blocks at the end of the document.
	AppendChildren(ctx context.Context, pageID string, children []*notion.Block) error
}
