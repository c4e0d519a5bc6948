package pipeline

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/internal/store"
)

// DedupeFilter drops feed items whose dedup key has already been processed
// in a previous run. It only reads seen-state; marking happens after the
// extraction attempt so transient fetch failures are never retried.
type DedupeFilter struct {
	store store.Store
}

// NewDedupeFilter creates a DedupeFilter backed by st.
func NewDedupeFilter(st store.Store) *DedupeFilter {
	return &DedupeFilter{store: st}
}

// FilterNew returns the items not yet seen, order preserved. A store read
// failure is fatal: processing without dedup state risks duplicate output.
func (f *DedupeFilter) FilterNew(ctx context.Context, items []model.FeedItem) ([]model.FeedItem, error) {
	fresh := make([]model.FeedItem, 0, len(items))
	for _, item := range items {
		key := item.DedupKey()
		if key == "" {
			continue
		}
		seen, err := f.store.IsSeen(ctx, key)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: check seen state")
		}
		if !seen {
			fresh = append(fresh, item)
		}
	}
	return fresh, nil
}
