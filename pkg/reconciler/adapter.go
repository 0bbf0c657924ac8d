package reconciler

import (
	"context"

	"github.com/s2wiki/pagetools/pkg/pages"
)

// Adapter produces the flat record sequence the aggregator consumes. A
// record is a page carrying its game. Records must arrive in registered game
// order; that order is kept in the resulting documents.
type Adapter interface {
	Records(ctx context.Context) ([]*pages.Page, error)
}

// Static is an in-memory Adapter. Every call returns fresh copies so runs
// never share pages.
type Static []*pages.Page

// Records returns copies of the static records.
func (s Static) Records(_ context.Context) ([]*pages.Page, error) {
	out := make([]*pages.Page, len(s))
	for i, p := range s {
		out[i] = p.Clone()
	}
	return out, nil
}
