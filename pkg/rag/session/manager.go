package session

import (
	"context"

	"rso-assistant-be/internal/constant"
	"rso-assistant-be/internal/repository/memory"
	"rso-assistant-be/pkg/genai"
)

// Manager maps session ids to live conversations. New sessions are seeded
// with a short priming exchange so the model answers in character from the
// first real turn.
type Manager struct {
	model    genai.ChatModel
	sessions *memory.SessionRepository
	genCfg   genai.GenerationConfig
}

func NewManager(model genai.ChatModel, sessions *memory.SessionRepository, genCfg genai.GenerationConfig) *Manager {
	return &Manager{
		model:    model,
		sessions: sessions,
		genCfg:   genCfg,
	}
}

// Send routes a prompt to the conversation for sessionID, creating and
// priming it on first use.
func (m *Manager) Send(ctx context.Context, sessionID, prompt string) (string, error) {
	conv := m.sessions.GetOrCreate(sessionID, func() genai.Conversation {
		seed := []genai.Turn{
			{Role: genai.RoleUser, Text: constant.ChatPrimingUserPromptV1},
			{Role: genai.RoleModel, Text: constant.ChatPrimingModelPromptV1},
		}
		return m.model.StartChat(seed, m.genCfg)
	})
	return conv.Send(ctx, prompt)
}

// Reset drops the conversation for sessionID. The next message starts fresh.
func (m *Manager) Reset(sessionID string) {
	m.sessions.Delete(sessionID)
}

// ActiveSessions reports how many conversations are currently held.
func (m *Manager) ActiveSessions() int {
	return m.sessions.Count()
}
