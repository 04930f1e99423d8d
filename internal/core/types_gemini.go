package core

// GeminiInlineData carries base64-encoded binary data tagged with a mime type.
type GeminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// GeminiPart is one part of a content block: either text or inline data.
type GeminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *GeminiInlineData `json:"inlineData,omitempty"`
}

// GeminiContent is an ordered sequence of parts.
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiGenerateRequest is the generateContent request body.
type GeminiGenerateRequest struct {
	Contents []GeminiContent `json:"contents"`
}

// GeminiCandidate is one generated response variant.
type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

// GeminiUsageMetadata holds upstream token counts.
type GeminiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// GeminiGenerateResponse is the generateContent response body.
type GeminiGenerateResponse struct {
	Candidates    []GeminiCandidate   `json:"candidates"`
	UsageMetadata GeminiUsageMetadata `json:"usageMetadata"`
}

// GeminiModelInfo is a single entry in the upstream models listing.
type GeminiModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}

// GeminiModelsResponse is the upstream models listing body.
type GeminiModelsResponse struct {
	Models []GeminiModelInfo `json:"models"`
}
