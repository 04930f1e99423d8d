package core

// CompletionRequest is the simplified chat completion request payload.
// All fields are optional; absent or empty fields are defaulted, never rejected.
type CompletionRequest struct {
	Model      string `json:"model"`
	Prompt     string `json:"prompt"`
	MimeType   string `json:"mimeType"`
	InlineData []byte `json:"inlineData,omitempty"`
}

// ChatMessage represents the assistant message inside a completion choice.
// Refusal is always serialized, null when absent.
type ChatMessage struct {
	Role    string  `json:"role"`
	Content string  `json:"content"`
	Refusal *string `json:"refusal"`
}

// CompletionChoice represents a single choice in a completion response.
// Logprobs is always serialized as null; no logprob computation is performed.
type CompletionChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	Logprobs     any         `json:"logprobs"`
	FinishReason string      `json:"finish_reason"`
}

// Usage represents token usage statistics in OpenAI format.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse is the OpenAI-compatible chat completion response.
type CompletionResponse struct {
	ID                string             `json:"id"`
	Object            string             `json:"object"`
	Created           int64              `json:"created"`
	Model             string             `json:"model"`
	Choices           []CompletionChoice `json:"choices"`
	Usage             Usage              `json:"usage"`
	SystemFingerprint string             `json:"system_fingerprint"`
}
