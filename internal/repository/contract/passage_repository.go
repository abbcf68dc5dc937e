package contract

import (
	"context"

	"rso-assistant-be/internal/entity"
)

// ScoredPassage wraps a Passage with the similarity reported by the match
// function (0.0 to 1.0, 1.0 = identical).
type ScoredPassage struct {
	Passage    *entity.Passage
	Similarity float64
}

type PassageRepository interface {
	// CreateBulk inserts all passages in a single transaction. A reindex is
	// all-or-nothing; a partial index is worse than a stale one.
	CreateBulk(ctx context.Context, passages []*entity.Passage) error
	// DeleteAll clears the passage table ahead of a reindex.
	DeleteAll(ctx context.Context) error
	// MatchNearest invokes the configured match function with the query
	// embedding and returns up to limit passages ordered by similarity.
	MatchNearest(ctx context.Context, embedding []float32, limit int) ([]*ScoredPassage, error)
	Count(ctx context.Context) (int64, error)
}
