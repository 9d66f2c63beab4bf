// Package notionclient adapts the Notion API to the exporter's destination
// interface. It owns per-call timeouts and the translation of parsed blocks
// into SDK request types; nothing here inspects block semantics.
package notionclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/studyflow/md2notion/internal/export"
	"github.com/studyflow/md2notion/notion"
)

// DefaultTimeout bounds every call against the destination API.
const DefaultTimeout = 10 * time.Second

// ErrTimeout marks a call cancelled by the per-request deadline. Check with
// errors.Is to distinguish a hung destination from a rejected request.
var ErrTimeout = errors.New("notion: request timed out")

// Client wraps the Notion SDK behind export.Destination.
type Client struct {
	api     *notionapi.Client
	timeout time.Duration
}

var _ export.Destination = (*Client)(nil)

// New constructs a client authenticated with the integration token. A
// non-positive timeout falls back to DefaultTimeout.
func New(token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		api:     notionapi.NewClient(notionapi.Token(token)),
		timeout: timeout,
	}
}

// LookupDatabase checks whether id names a database the integration can see.
func (c *Client) LookupDatabase(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.api.Database.Get(ctx, notionapi.DatabaseID(id)); err != nil {
		return c.wrap("database lookup", err)
	}
	return nil
}

// CreatePage creates the destination page with its first batch of children.
func (c *Client) CreatePage(ctx context.Context, parent export.Parent, title string, children []*notion.Block) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &notionapi.PageCreateRequest{
		Properties: titleProperties(parent, title),
		Children:   toAPIBlocks(children),
	}
	if parent.IsDatabase {
		req.Parent = notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(parent.ID),
		}
	} else {
		req.Parent = notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(parent.ID),
		}
	}

	page, err := c.api.Page.Create(ctx, req)
	if err != nil {
		return "", c.wrap("page create", err)
	}
	return string(page.ID), nil
}

// AppendChildren appends one batch of blocks at the end of the page.
func (c *Client) AppendChildren(ctx context.Context, pageID string, children []*notion.Block) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &notionapi.AppendBlockChildrenRequest{Children: toAPIBlocks(children)}
	if _, err := c.api.Block.AppendChildren(ctx, notionapi.BlockID(pageID), req); err != nil {
		return c.wrap("append children", err)
	}
	return nil
}

func (c *Client) wrap(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s after %s: %w", op, c.timeout, ErrTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// titleProperties builds the title property under the key the parent kind
// expects: database entries conventionally title under "Name", plain pages
// under "title".
func titleProperties(parent export.Parent, title string) notionapi.Properties {
	key := "title"
	if parent.IsDatabase {
		key = "Name"
	}
	return notionapi.Properties{
		key: notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{plainRichText(title)},
		},
	}
}

func plainRichText(content string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}
}
