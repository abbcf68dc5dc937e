package embedding

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"

	"rso-assistant-be/internal/pkg/apperrors"
)

// encoder is the transport beneath the provider. *embeddings.EmbedderImpl
// satisfies it; tests substitute a fake.
type encoder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// E5Provider serves an E5-family model over a local inference server. It
// applies the asymmetric markers and normalizes every vector before returning
// it; raw model output never leaves this package.
type E5Provider struct {
	enc encoder
	dim int
}

// NewE5Provider connects to the inference server once; the resulting provider
// is shared for the process lifetime. Model construction is the expensive
// part, so callers must not build one per request.
func NewE5Provider(baseURL, model string, dim int) (*E5Provider, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(baseURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init embedding model: %w", err)
	}

	// newlines are meaningful in handbook passages, keep them
	enc, err := embeddings.NewEmbedder(llm, embeddings.WithStripNewLines(false))
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	return &E5Provider{enc: enc, dim: dim}, nil
}

func newE5WithEncoder(enc encoder, dim int) *E5Provider {
	return &E5Provider{enc: enc, dim: dim}
}

func (p *E5Provider) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vec, err := p.enc.EmbedQuery(ctx, QueryPrefix+text)
	if err != nil {
		return nil, err
	}
	if err := p.checkDimension(vec); err != nil {
		return nil, err
	}
	return Normalize(vec), nil
}

func (p *E5Provider) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	marked := make([]string, len(texts))
	for i, t := range texts {
		marked[i] = PassagePrefix + t
	}

	vecs, err := p.enc.EmbedDocuments(ctx, marked)
	if err != nil {
		return nil, err
	}

	out := make([][]float32, len(vecs))
	for i, vec := range vecs {
		if err := p.checkDimension(vec); err != nil {
			return nil, err
		}
		out[i] = Normalize(vec)
	}
	return out, nil
}

func (p *E5Provider) Dimension() int {
	return p.dim
}

// checkDimension treats a width mismatch as a configuration error: the model
// id and the store's vector column no longer agree, and every write or search
// after this point would be garbage.
func (p *E5Provider) checkDimension(vec []float32) error {
	if len(vec) != p.dim {
		return apperrors.Configuration("embedding",
			fmt.Sprintf("model returned %d-dim vector, store expects %d", len(vec), p.dim))
	}
	return nil
}
