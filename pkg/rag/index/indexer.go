package index

import (
	"context"

	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/repository/contract"
	"rso-assistant-be/pkg/chunk"
	"rso-assistant-be/pkg/embedding"
	"rso-assistant-be/pkg/sanitize"
)

// Indexer turns source documents into stored, embedded passages:
// chunk, sanitize, embed, persist. One CreateBulk per run keeps a
// reindex atomic.
type Indexer struct {
	provider embedding.Provider
	repo     contract.PassageRepository
}

func NewIndexer(provider embedding.Provider, repo contract.PassageRepository) *Indexer {
	return &Indexer{
		provider: provider,
		repo:     repo,
	}
}

// Index chunks, cleans, embeds, and stores the documents, returning the
// number of passages written. Zero chunks short-circuits before touching
// the embedder or the store.
func (ix *Indexer) Index(ctx context.Context, docs []chunk.Document) (int, error) {
	if ix.repo == nil {
		return 0, apperrors.Configuration("index", "vector store is not configured")
	}

	passages := chunk.Split(docs, chunk.DefaultSize, chunk.DefaultOverlap)
	if len(passages) == 0 {
		return 0, nil
	}

	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = sanitize.Text(p.Text)
	}

	vectors, err := ix.provider.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, apperrors.Upstream("embed", err)
	}

	entities := make([]*entity.Passage, len(passages))
	for i, p := range passages {
		entities[i] = &entity.Passage{
			Content:   texts[i],
			Metadata:  sanitize.Metadata(p.Metadata),
			Embedding: embedding.Normalize(vectors[i]),
		}
	}

	if err := ix.repo.CreateBulk(ctx, entities); err != nil {
		return 0, apperrors.Upstream("store", err)
	}
	return len(entities), nil
}

// Reindex clears the passage table and indexes the documents from scratch.
func (ix *Indexer) Reindex(ctx context.Context, docs []chunk.Document) (int, error) {
	if ix.repo == nil {
		return 0, apperrors.Configuration("index", "vector store is not configured")
	}
	if err := ix.repo.DeleteAll(ctx); err != nil {
		return 0, apperrors.Upstream("store", err)
	}
	return ix.Index(ctx, docs)
}
