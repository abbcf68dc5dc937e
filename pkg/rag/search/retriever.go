package search

import (
	"context"
	"fmt"
	"strings"

	"rso-assistant-be/internal/constant"
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/repository/contract"
	"rso-assistant-be/pkg/embedding"
	"rso-assistant-be/pkg/sanitize"
)

// Result is what retrieval hands to prompt assembly: the citation-tagged
// context block (or the no-context sentinel) plus the matched passages for
// source attribution.
type Result struct {
	ContextBlock string
	Passages     []*entity.Passage
}

// Retriever embeds a query and fetches the nearest stored passages.
type Retriever struct {
	provider embedding.Provider
	repo     contract.PassageRepository
}

func NewRetriever(provider embedding.Provider, repo contract.PassageRepository) *Retriever {
	return &Retriever{
		provider: provider,
		repo:     repo,
	}
}

// Retrieve returns the top-k passages for the query, formatted as a context
// block. The threshold parameter is accepted for interface stability but the
// match function ranks purely by similarity; rows are not filtered by it.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int, threshold float64) (*Result, error) {
	if r.repo == nil {
		return nil, apperrors.Configuration("retrieve", "vector store is not configured")
	}

	cleaned := sanitize.Text(query)
	vector, err := r.provider.EmbedQuery(ctx, cleaned)
	if err != nil {
		return nil, apperrors.Upstream("embed", err)
	}

	scored, err := r.repo.MatchNearest(ctx, embedding.Normalize(vector), k)
	if err != nil {
		return nil, apperrors.Upstream("match", err)
	}

	if len(scored) == 0 {
		return &Result{ContextBlock: constant.NoContextSentinel}, nil
	}

	passages := make([]*entity.Passage, len(scored))
	blocks := make([]string, len(scored))
	for i, s := range scored {
		passages[i] = s.Passage
		blocks[i] = formatCitation(s.Passage)
	}

	return &Result{
		ContextBlock: strings.Join(blocks, constant.ContextBlockSeparator),
		Passages:     passages,
	}, nil
}

// formatCitation tags a passage with its provenance so the model can cite
// it. Both segments are always present; non-paginated sources get a dash so
// the tag shape stays fixed for the model.
func formatCitation(p *entity.Passage) string {
	page := any("–")
	if v, ok := p.Page(); ok {
		page = v
	}
	return fmt.Sprintf("[source: %s | page: %v]\n%s", p.Source(), page, p.Content)
}
