// Package genai talks to the Gemini generateContent REST API and keeps
// per-conversation turn history. History lives in the Chat object, so one
// Chat per caller session gives the model the full dialogue on every turn.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

const (
	RoleUser  = "user"
	RoleModel = "model"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1"
)

// Turn is one message in a conversation, provider roles ("user"/"model").
type Turn struct {
	Role string
	Text string
}

// GenerationConfig is passed on every turn.
type GenerationConfig struct {
	Temperature     float64
	MaxOutputTokens int
}

// ChatModel creates stateful conversations. The concrete Client talks to
// Gemini; tests substitute a counting double.
type ChatModel interface {
	StartChat(seed []Turn, cfg GenerationConfig) Conversation
}

// Conversation is one ongoing dialogue. Send appends the user turn, calls the
// model with the full history, and records the reply. Safe for concurrent use.
type Conversation interface {
	Send(ctx context.Context, message string) (string, error)
}

type chatPart struct {
	Text string `json:"text"`
}

type chatContent struct {
	Parts []*chatPart `json:"parts"`
	Role  string      `json:"role"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type chatRequest struct {
	Contents         []*chatContent    `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type chatCandidate struct {
	Content *chatContent `json:"content"`
}

type chatResponse struct {
	Candidates []*chatCandidate `json:"candidates"`
}

// Client is the process-wide Gemini client.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) ModelName() string {
	return c.model
}

// StartChat opens a conversation seeded with an initial history.
func (c *Client) StartChat(seed []Turn, cfg GenerationConfig) Conversation {
	history := make([]Turn, len(seed))
	copy(history, seed)
	return &Chat{client: c, cfg: cfg, history: history}
}

// Chat holds one conversation's history. The mutex serializes turns for the
// same session so concurrent requests cannot interleave half-recorded
// exchanges.
type Chat struct {
	client  *Client
	cfg     GenerationConfig
	mu      sync.Mutex
	history []Turn
}

// Send forwards message with the full history and records the reply. On
// error the user turn is not recorded, so a failed request leaves the
// history exactly as it was.
func (ch *Chat) Send(ctx context.Context, message string) (string, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	turns := make([]Turn, 0, len(ch.history)+1)
	turns = append(turns, ch.history...)
	turns = append(turns, Turn{Role: RoleUser, Text: message})

	reply, err := ch.client.generate(ctx, turns, ch.cfg)
	if err != nil {
		return "", err
	}

	ch.history = append(turns, Turn{Role: RoleModel, Text: reply})
	return reply, nil
}

func (c *Client) generate(ctx context.Context, turns []Turn, cfg GenerationConfig) (string, error) {
	contents := make([]*chatContent, 0, len(turns))
	for _, turn := range turns {
		contents = append(contents, &chatContent{
			Parts: []*chatPart{{Text: turn.Text}},
			Role:  turn.Role,
		})
	}

	payload := chatRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var chatRes chatResponse
	if err := json.Unmarshal(resBody, &chatRes); err != nil {
		return "", err
	}

	if len(chatRes.Candidates) == 0 || chatRes.Candidates[0].Content == nil ||
		len(chatRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	return chatRes.Candidates[0].Content.Parts[0].Text, nil
}
