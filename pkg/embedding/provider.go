// Package embedding maps text to fixed-dimension vectors for similarity
// search. The model family is asymmetric: queries and passages are marked
// differently before encoding, and both sides must go through the same
// provider instance or the vectors stop being comparable.
package embedding

import (
	"context"
	"math"
)

// E5-style instruction markers. The provider owns them: callers hand over raw
// text and must never prefix it themselves.
const (
	QueryPrefix   = "query: "
	PassagePrefix = "passage: "
)

// Provider is the process-wide embedding dependency, constructed once at
// startup and injected. Safe for concurrent use after construction.
type Provider interface {
	// EmbedQuery encodes a search query (query-side marker applied).
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	// EmbedDocuments encodes passages for indexing (passage-side marker
	// applied to each).
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	// Dimension is the fixed output width; it must match the vector store's
	// declared column width.
	Dimension() int
}

// Normalize scales vec to unit length. The store's similarity function
// assumes unit vectors (cosine via dot product), so this is mandatory on
// every vector the provider returns.
func Normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
