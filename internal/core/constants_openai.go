package core

// OpenAI object type constants
const (
	ChatCompletionObjectType = "chat.completion"
)

// ID prefix constants
const (
	ResponseIDPrefix = "chatcmpl-"
)

// SystemFingerprint is the constant placeholder emitted in every completion
// response; it is not derived from anything.
const SystemFingerprint = "fp_gemini2api"

// Request defaulting constants
const (
	DefaultModel    = "gemini-1.5-flash"
	DefaultPrompt   = "No prompt provided"
	DefaultMimeType = "text/plain"
)

// Fixed client-visible error messages. Handler failures are logged with full
// detail server-side; the response body only ever carries these.
const (
	ErrMsgFetchModels      = "Failed to fetch Gemini models"
	ErrMsgGenerateResponse = "Failed to generate response"
)
