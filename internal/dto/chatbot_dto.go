package dto

type ChatRequest struct {
	UserMessage string `json:"user_message" validate:"required"`
	SessionId   string `json:"session_id" validate:"required"`
}

type ChatResponse struct {
	Response string           `json:"response"`
	Sources  []map[string]any `json:"sources"`
}

type ReindexResponse struct {
	IndexedChunks int `json:"indexed_chunks"`
}
