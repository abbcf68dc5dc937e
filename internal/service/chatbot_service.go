package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"rso-assistant-be/internal/dto"
	"rso-assistant-be/internal/entity"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/pkg/logger"
	"rso-assistant-be/pkg/rag/prompt"
	"rso-assistant-be/pkg/rag/search"
	"rso-assistant-be/pkg/rag/session"
)

type IChatbotService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// ChatOptions bound each stage of a chat turn. Retrieval gets a short
// budget; the model call a longer one. Both produce 504 at the API
// boundary when exceeded.
type ChatOptions struct {
	TopK             int
	MatchThreshold   float64
	RetrievalTimeout time.Duration
	ModelTimeout     time.Duration
}

type chatbotService struct {
	retriever *search.Retriever
	builder   *prompt.Builder
	sessions  *session.Manager
	logger    logger.ILogger
	opts      ChatOptions
}

func NewChatbotService(
	retriever *search.Retriever,
	builder *prompt.Builder,
	sessions *session.Manager,
	log logger.ILogger,
	opts ChatOptions,
) IChatbotService {
	if opts.TopK <= 0 {
		opts.TopK = 5
	}
	if opts.RetrievalTimeout <= 0 {
		opts.RetrievalTimeout = 8 * time.Second
	}
	if opts.ModelTimeout <= 0 {
		opts.ModelTimeout = 20 * time.Second
	}
	return &chatbotService{
		retriever: retriever,
		builder:   builder,
		sessions:  sessions,
		logger:    log,
		opts:      opts,
	}
}

// Chat runs one grounded turn: retrieve context for the question, assemble
// the prompt, and send it through the caller's session.
func (s *chatbotService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	question := strings.TrimSpace(request.UserMessage)
	if question == "" {
		return nil, apperrors.EmptyInput("user_message must not be empty")
	}

	retrievalCtx, cancelRetrieval := context.WithTimeout(ctx, s.opts.RetrievalTimeout)
	defer cancelRetrieval()

	result, err := s.retriever.Retrieve(retrievalCtx, question, s.opts.TopK, s.opts.MatchThreshold)
	if err != nil {
		return nil, classify("retrieve", err)
	}

	s.logger.Debug("chatbot", "context retrieved", map[string]interface{}{
		"session_id": request.SessionId,
		"passages":   len(result.Passages),
	})

	fullPrompt := s.builder.Build(result.ContextBlock, question)

	modelCtx, cancelModel := context.WithTimeout(ctx, s.opts.ModelTimeout)
	defer cancelModel()

	answer, err := s.sessions.Send(modelCtx, request.SessionId, fullPrompt)
	if err != nil {
		return nil, classify("generate", err)
	}

	return &dto.ChatResponse{
		Response: answer,
		Sources:  sourceList(result.Passages),
	}, nil
}

// classify keeps already-typed errors and separates deadline hits from
// other upstream failures.
func classify(stage string, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind != apperrors.KindUpstream {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Timeout(stage, err)
	}
	if appErr != nil {
		return err
	}
	return apperrors.Upstream(stage, err)
}

// sourceList projects passages down to the metadata keys the client renders.
// Everything else in the stored metadata stays server-side.
func sourceList(passages []*entity.Passage) []map[string]any {
	sources := make([]map[string]any, 0, len(passages))
	for _, p := range passages {
		src := map[string]any{}
		for _, key := range []string{"source", "page", "title"} {
			if v, ok := p.Metadata[key]; ok {
				src[key] = v
			}
		}
		sources = append(sources, src)
	}
	return sources
}
