package repository

import (
	"context"

	"github.com/prasetyadi/dealer-restock/internal/planner"
)

// SnapshotRepository materializes the latest raw feed snapshot for one
// dealer. The realtime feeds themselves are external; this reads their
// mirrored rows.
type SnapshotRepository interface {
	LoadFeeds(ctx context.Context, dealer string) (*planner.RawFeeds, error)
}
