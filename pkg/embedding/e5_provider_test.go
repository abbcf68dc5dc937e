package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rso-assistant-be/internal/pkg/apperrors"
)

// fakeEncoder returns a deterministic vector derived from the marked text so
// tests can observe exactly what the provider sent down.
type fakeEncoder struct {
	dim        int
	queries    []string
	documents  []string
	queryCalls int
	docCalls   int
}

func (f *fakeEncoder) encode(text string) []float32 {
	vec := make([]float32, f.dim)
	for i, r := range text {
		vec[i%f.dim] += float32(r)
	}
	return vec
}

func (f *fakeEncoder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	f.queryCalls++
	f.queries = append(f.queries, text)
	return f.encode(text), nil
}

func (f *fakeEncoder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	f.docCalls++
	f.documents = append(f.documents, texts...)
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.encode(t)
	}
	return out, nil
}

func l2Norm(vec []float32) float64 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

func TestEmbedQueryAppliesQueryMarker(t *testing.T) {
	enc := &fakeEncoder{dim: 8}
	p := newE5WithEncoder(enc, 8)

	_, err := p.EmbedQuery(context.Background(), "how do reimbursements work?")
	require.NoError(t, err)

	require.Len(t, enc.queries, 1)
	assert.Equal(t, "query: how do reimbursements work?", enc.queries[0])
}

func TestEmbedDocumentsAppliesPassageMarker(t *testing.T) {
	enc := &fakeEncoder{dim: 8}
	p := newE5WithEncoder(enc, 8)

	_, err := p.EmbedDocuments(context.Background(), []string{"first", "second"})
	require.NoError(t, err)

	require.Len(t, enc.documents, 2)
	assert.Equal(t, "passage: first", enc.documents[0])
	assert.Equal(t, "passage: second", enc.documents[1])
}

func TestAsymmetricEncodingDiffersForIdenticalText(t *testing.T) {
	enc := &fakeEncoder{dim: 8}
	p := newE5WithEncoder(enc, 8)

	q, err := p.EmbedQuery(context.Background(), "x")
	require.NoError(t, err)
	docs, err := p.EmbedDocuments(context.Background(), []string{"x"})
	require.NoError(t, err)

	assert.NotEqual(t, q, docs[0])
}

func TestVectorsAreUnitNorm(t *testing.T) {
	enc := &fakeEncoder{dim: 16}
	p := newE5WithEncoder(enc, 16)

	q, err := p.EmbedQuery(context.Background(), "some question")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l2Norm(q), 1e-5)

	docs, err := p.EmbedDocuments(context.Background(), []string{"a passage", "another one"})
	require.NoError(t, err)
	for _, d := range docs {
		assert.InDelta(t, 1.0, l2Norm(d), 1e-5)
	}
}

func TestDimensionMismatchIsConfigurationError(t *testing.T) {
	enc := &fakeEncoder{dim: 8}
	p := newE5WithEncoder(enc, 768)

	_, err := p.EmbedQuery(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindConfiguration))

	_, err = p.EmbedDocuments(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindConfiguration))
}

func TestEmbedDocumentsEmptyInput(t *testing.T) {
	enc := &fakeEncoder{dim: 8}
	p := newE5WithEncoder(enc, 8)

	vecs, err := p.EmbedDocuments(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vecs)
	assert.Zero(t, enc.docCalls)
}

func TestNormalizeZeroVector(t *testing.T) {
	zero := make([]float32, 4)
	assert.Equal(t, zero, Normalize(zero))
}
