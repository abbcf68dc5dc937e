package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passage is one indexed span of handbook text plus its provenance metadata
// (commonly "source" and "page"). Immutable once indexed; the only update
// path is a full reindex.
type Passage struct {
	Id        uuid.UUID
	Content   string
	Metadata  map[string]any
	Embedding []float32
	CreatedAt time.Time
}

// Source returns the provenance source, or "unknown" when the metadata does
// not carry one.
func (p *Passage) Source() string {
	if s, ok := p.Metadata["source"].(string); ok && s != "" {
		return s
	}
	return "unknown"
}

// Page returns the page tag as stored. JSONB round-trips numbers as float64,
// so callers format with %v rather than asserting a type.
func (p *Passage) Page() (any, bool) {
	v, ok := p.Metadata["page"]
	return v, ok
}
