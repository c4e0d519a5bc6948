package store

import (
	"context"

	"github.com/sells-group/scout-cli/internal/model"
)

// Store persists seen-URL state and run history. Seen-state writes are the
// backbone of the at-most-once processing guarantee: a failed MarkSeen must
// abort the run rather than risk reprocessing.
type Store interface {
	IsSeen(ctx context.Context, url string) (bool, error)
	MarkSeen(ctx context.Context, url, itemType string) error
	Stats(ctx context.Context) (map[string]int, error)

	CreateRun(ctx context.Context) (*model.RunRecord, error)
	FinishRun(ctx context.Context, runID string, stats *model.RunStats) error
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)

	Close() error
}
