package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		apiKey:     "test-key",
		model:      "gemini-2.0-flash",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}, srv
}

func replyWith(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := chatResponse{
			Candidates: []*chatCandidate{{
				Content: &chatContent{
					Parts: []*chatPart{{Text: text}},
					Role:  RoleModel,
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func TestChatSendAccumulatesHistory(t *testing.T) {
	var lastReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastReq))
		replyWith("the answer")(w, r)
	})

	chat := client.StartChat([]Turn{
		{Role: RoleUser, Text: "You are a helpful club assistant."},
		{Role: RoleModel, Text: "Hi!"},
	}, GenerationConfig{Temperature: 0.2, MaxOutputTokens: 1024})

	_, err := chat.Send(context.Background(), "first question")
	require.NoError(t, err)
	// seed pair + user turn
	assert.Len(t, lastReq.Contents, 3)

	_, err = chat.Send(context.Background(), "second question")
	require.NoError(t, err)
	// seed pair + first exchange + new user turn
	require.Len(t, lastReq.Contents, 5)
	assert.Equal(t, RoleModel, lastReq.Contents[3].Role)
	assert.Equal(t, "the answer", lastReq.Contents[3].Parts[0].Text)
	assert.Equal(t, "second question", lastReq.Contents[4].Parts[0].Text)
}

func TestChatSendSetsGenerationConfigAndAuth(t *testing.T) {
	var gotKey string
	var lastReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastReq))
		replyWith("ok")(w, r)
	})

	chat := client.StartChat(nil, GenerationConfig{Temperature: 0.2, MaxOutputTokens: 1024})
	_, err := chat.Send(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	require.NotNil(t, lastReq.GenerationConfig)
	assert.Equal(t, 0.2, lastReq.GenerationConfig.Temperature)
	assert.Equal(t, 1024, lastReq.GenerationConfig.MaxOutputTokens)
}

func TestChatSendFailureLeavesHistoryUntouched(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// the failed turn must not have been recorded
		assert.Len(t, req.Contents, 1)
		replyWith("ok")(w, r)
	})

	chat := client.StartChat(nil, GenerationConfig{})
	_, err := chat.Send(context.Background(), "will fail")
	require.Error(t, err)

	_, err = chat.Send(context.Background(), "will succeed")
	require.NoError(t, err)
}

func TestChatSendHonorsContextDeadline(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		replyWith("late")(w, r)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	chat := client.StartChat(nil, GenerationConfig{})
	_, err := chat.Send(ctx, "question")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChatSendEmptyCandidates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse{})
	})

	chat := client.StartChat(nil, GenerationConfig{})
	_, err := chat.Send(context.Background(), "question")
	assert.Error(t, err)
}
