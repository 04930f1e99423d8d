package util

import (
	"math/rand/v2"
	"os"
	"strings"

	"gemini2api/internal/core"

	"github.com/bytedance/sonic"
)

// MarshalJSON wraps Sonic for performance
func MarshalJSON(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// UnmarshalJSON wraps Sonic for performance
func UnmarshalJSON(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CompletionIDLength is the random suffix length of generated completion IDs.
const CompletionIDLength = 24

// RandomIDGenerator generates pseudo-random alphanumeric completion IDs.
// Not cryptographically secure and not collision-checked.
type RandomIDGenerator struct{}

// CompletionID returns a new prefixed random ID.
func (g *RandomIDGenerator) CompletionID() string {
	var sb strings.Builder
	sb.Grow(len(core.ResponseIDPrefix) + CompletionIDLength)
	sb.WriteString(core.ResponseIDPrefix)
	for range CompletionIDLength {
		sb.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return sb.String()
}

// ParseEnvList parses comma-separated env var to trimmed slice
func ParseEnvList(envVar string) []string {
	if envVar == "" {
		return nil
	}
	parts := strings.Split(envVar, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// GetEnvWithDefault gets env var with default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// TruncateString truncates string and adds replacement text in the middle
func TruncateString(s string, prefixLen, suffixLen int, replacement string) string {
	if len(s) > prefixLen+suffixLen {
		return s[:prefixLen] + replacement + s[len(s)-suffixLen:]
	}
	return s
}
