package core

// Upstream API constants
const (
	GeminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// GeminiModelNamespace is the namespace segment prefixed to model
	// identifiers in the upstream models listing.
	GeminiModelNamespace = "models/"
)

// Upstream error messages
const (
	ErrMsgAPIKeyNotSet       = "API key not set"
	ErrMsgUpstreamListModels = "failed to fetch models"
	ErrMsgUpstreamGenerate   = "failed to generate text"
)
