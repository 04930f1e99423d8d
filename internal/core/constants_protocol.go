package core

// Default config constants
const (
	DefaultPort    = "3000"
	DefaultGinMode = "release"
	CORSMaxAge     = "86400"
)

// Content type and header constants
const (
	ContentTypeJSON     = "application/json"
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderXAPIKey       = "x-api-key"
	HeaderRequestID     = "X-Request-ID"
	AuthBearerPrefix    = "Bearer "
)

// Role constants
const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)
