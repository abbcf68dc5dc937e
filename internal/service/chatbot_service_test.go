package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"rso-assistant-be/internal/constant"
	"rso-assistant-be/internal/dto"
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/repository/contract"
	"rso-assistant-be/internal/repository/memory"
	"rso-assistant-be/pkg/chunk"
	"rso-assistant-be/pkg/genai"
	"rso-assistant-be/pkg/rag/index"
	"rso-assistant-be/pkg/rag/prompt"
	"rso-assistant-be/pkg/rag/search"
	"rso-assistant-be/pkg/rag/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hashProvider produces deterministic vectors where identical text embeds
// identically, so retrieval ranks the passage sharing words with the query
// first.
type hashProvider struct {
	queryCalls int
	docCalls   int
}

func embedText(text string) []float32 {
	vec := make([]float32, 8)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := 0
		for _, r := range word {
			h = h*31 + int(r)
		}
		if h < 0 {
			h = -h
		}
		vec[h%8] += 1
	}
	return vec
}

func (p *hashProvider) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	p.queryCalls++
	return embedText(text), nil
}

func (p *hashProvider) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	p.docCalls++
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = embedText(t)
	}
	return out, nil
}

func (p *hashProvider) Dimension() int { return 8 }

// memoryPassageRepo ranks stored passages by dot product against the query
// vector, standing in for the database-side match function. With block set,
// MatchNearest stalls like a wedged connection until the context expires.
type memoryPassageRepo struct {
	passages []*entity.Passage
	block    bool
}

func (r *memoryPassageRepo) CreateBulk(ctx context.Context, passages []*entity.Passage) error {
	r.passages = append(r.passages, passages...)
	return nil
}

func (r *memoryPassageRepo) DeleteAll(ctx context.Context) error {
	r.passages = nil
	return nil
}

func (r *memoryPassageRepo) MatchNearest(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredPassage, error) {
	if r.block {
		<-ctx.Done()
		return nil, fmt.Errorf("query context: %w", ctx.Err())
	}
	scored := make([]*contract.ScoredPassage, len(r.passages))
	for i, p := range r.passages {
		var dot float64
		for j := range embedding {
			if j < len(p.Embedding) {
				dot += float64(embedding[j]) * float64(p.Embedding[j])
			}
		}
		scored[i] = &contract.ScoredPassage{Passage: p, Similarity: dot}
	}
	sort.Slice(scored, func(a, b int) bool { return scored[a].Similarity > scored[b].Similarity })
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func (r *memoryPassageRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.passages)), nil
}

// recordingModel captures prompts and returns a canned answer.
type recordingModel struct {
	started int
	prompts []string
	answer  string
	block   bool
	fail    error
}

func (m *recordingModel) StartChat(seed []genai.Turn, cfg genai.GenerationConfig) genai.Conversation {
	m.started++
	return &recordingConversation{model: m}
}

type recordingConversation struct {
	model *recordingModel
}

func (c *recordingConversation) Send(ctx context.Context, message string) (string, error) {
	c.model.prompts = append(c.model.prompts, message)
	if c.model.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if c.model.fail != nil {
		return "", c.model.fail
	}
	if c.model.answer != "" {
		return c.model.answer, nil
	}
	return "answer", nil
}

type chatFixture struct {
	provider *hashProvider
	repo     *memoryPassageRepo
	model    *recordingModel
	indexer  *index.Indexer
	svc      IChatbotService
}

func newChatFixture(t *testing.T, opts ChatOptions) *chatFixture {
	t.Helper()

	provider := &hashProvider{}
	repo := &memoryPassageRepo{}
	model := &recordingModel{}

	retriever := search.NewRetriever(provider, repo)
	builder := prompt.NewBuilder(constant.DefaultPreface.Render())
	sessions := session.NewManager(model, memory.NewSessionRepository(), genai.GenerationConfig{Temperature: 0.2, MaxOutputTokens: 1024})

	return &chatFixture{
		provider: provider,
		repo:     repo,
		model:    model,
		indexer:  index.NewIndexer(provider, repo),
		svc:      NewChatbotService(retriever, builder, sessions, newTestLogger(), opts),
	}
}

func TestChat_AnswersFromIndexedHandbook(t *testing.T) {
	f := newChatFixture(t, ChatOptions{TopK: 2})
	f.model.answer = "Budgets are due in May."

	docs := []chunk.Document{
		{Text: "Annual budgets are due in May each year.", Metadata: map[string]any{"source": "Handbook.pdf", "page": 1}},
		{Text: "Travel reimbursements require original receipts.", Metadata: map[string]any{"source": "Handbook.pdf", "page": 2}},
	}
	_, err := f.indexer.Index(context.Background(), docs)
	require.NoError(t, err)

	resp, err := f.svc.Chat(context.Background(), &dto.ChatRequest{
		UserMessage: "when are annual budgets due",
		SessionId:   "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Budgets are due in May.", resp.Response)
	require.NotEmpty(t, resp.Sources)
	assert.Equal(t, "Handbook.pdf", resp.Sources[0]["source"])
	assert.Equal(t, 1, resp.Sources[0]["page"])

	require.Len(t, f.model.prompts, 1)
	sent := f.model.prompts[0]
	assert.Contains(t, sent, constant.ContextStartDelimiter)
	assert.Contains(t, sent, "[source: Handbook.pdf | page: 1]")
	assert.Contains(t, sent, "Question:\nwhen are annual budgets due")
}

func TestChat_EmptyStoreStillAnswersWithSentinel(t *testing.T) {
	f := newChatFixture(t, ChatOptions{})

	resp, err := f.svc.Chat(context.Background(), &dto.ChatRequest{
		UserMessage: "hi",
		SessionId:   "s1",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Sources)
	require.Len(t, f.model.prompts, 1)
	assert.Contains(t, f.model.prompts[0], constant.NoContextSentinel)
}

func TestChat_OneConversationPerSession(t *testing.T) {
	f := newChatFixture(t, ChatOptions{})

	for _, msg := range []string{"first question", "second question"} {
		_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{UserMessage: msg, SessionId: "stable"})
		require.NoError(t, err)
	}
	_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{UserMessage: "other", SessionId: "different"})
	require.NoError(t, err)

	assert.Equal(t, 2, f.model.started)
}

func TestChat_EmptyMessageRejectedBeforeAnyCall(t *testing.T) {
	f := newChatFixture(t, ChatOptions{})

	for _, msg := range []string{"", "   ", "\n\t "} {
		_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{UserMessage: msg, SessionId: "s1"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindEmptyInput))
	}

	assert.Equal(t, 0, f.provider.queryCalls)
	assert.Equal(t, 0, f.model.started)
}

func TestChat_RetrievalTimeoutIsGatewayTimeout(t *testing.T) {
	f := newChatFixture(t, ChatOptions{RetrievalTimeout: 20 * time.Millisecond})
	f.repo.block = true

	_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{UserMessage: "slow store", SessionId: "s1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindTimeout))
	assert.Equal(t, 504, apperrors.HTTPStatus(err))
	assert.Equal(t, 0, f.model.started)
}

func TestChat_ModelTimeoutIsGatewayTimeout(t *testing.T) {
	f := newChatFixture(t, ChatOptions{ModelTimeout: 20 * time.Millisecond})
	f.model.block = true

	_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{UserMessage: "slow question", SessionId: "s1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindTimeout))
	assert.Equal(t, 504, apperrors.HTTPStatus(err))
}

func TestChat_ModelFailureIsUpstream(t *testing.T) {
	f := newChatFixture(t, ChatOptions{})
	f.model.fail = errors.New("api key rejected")

	_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{UserMessage: "q", SessionId: "s1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUpstream))
	assert.Equal(t, 500, apperrors.HTTPStatus(err))
	assert.Equal(t, "Error generating response.", apperrors.PublicMessage(err))
}

func TestChat_MissingStoreIsConfigurationError(t *testing.T) {
	provider := &hashProvider{}
	model := &recordingModel{}
	retriever := search.NewRetriever(provider, nil)
	builder := prompt.NewBuilder(constant.DefaultPreface.Render())
	sessions := session.NewManager(model, memory.NewSessionRepository(), genai.GenerationConfig{})
	svc := NewChatbotService(retriever, builder, sessions, newTestLogger(), ChatOptions{})

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{UserMessage: "q", SessionId: "s1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindConfiguration))
	assert.Equal(t, 0, model.started)
}
