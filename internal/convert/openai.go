package convert

import (
	"encoding/base64"
	"strings"
	"time"

	"gemini2api/internal/core"
)

// ApplyDefaults resolves absent request fields in place. Unknown or
// malformed shapes are defaulted, never rejected.
func ApplyDefaults(request *core.CompletionRequest) {
	if request.Model == "" {
		request.Model = core.DefaultModel
	}
	if request.Prompt == "" {
		request.Prompt = core.DefaultPrompt
	}
	if request.MimeType == "" {
		request.MimeType = core.DefaultMimeType
	}
}

// BuildContents shapes the upstream contents for a defaulted request:
// a single content block whose first part is the prompt text, with a
// second inline-data part only when inline data is present.
func BuildContents(request core.CompletionRequest) []core.GeminiContent {
	parts := []core.GeminiPart{{Text: request.Prompt}}

	if len(request.InlineData) > 0 {
		parts = append(parts, core.GeminiPart{
			InlineData: &core.GeminiInlineData{
				MimeType: request.MimeType,
				Data:     base64.StdEncoding.EncodeToString(request.InlineData),
			},
		})
	}

	return []core.GeminiContent{{Parts: parts}}
}

// GeminiToCompletionResponse reshapes an upstream generation response into
// the OpenAI-compatible completion object. One choice per candidate; each
// choice's content is the ordered no-separator concatenation of that
// candidate's text parts.
func GeminiToCompletionResponse(
	model string,
	upstream *core.GeminiGenerateResponse,
	idGen core.IDGenerator,
	now time.Time,
) core.CompletionResponse {
	choices := make([]core.CompletionChoice, 0, len(upstream.Candidates))
	for i, candidate := range upstream.Candidates {
		var content strings.Builder
		for _, part := range candidate.Content.Parts {
			content.WriteString(part.Text)
		}

		choices = append(choices, core.CompletionChoice{
			Index: i,
			Message: core.ChatMessage{
				Role:    core.RoleAssistant,
				Content: content.String(),
			},
			FinishReason: strings.ToLower(candidate.FinishReason),
		})
	}

	return core.CompletionResponse{
		ID:      idGen.CompletionID(),
		Object:  core.ChatCompletionObjectType,
		Created: now.Unix(),
		Model:   model,
		Choices: choices,
		Usage: core.Usage{
			PromptTokens:     upstream.UsageMetadata.PromptTokenCount,
			CompletionTokens: upstream.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      upstream.UsageMetadata.TotalTokenCount,
		},
		SystemFingerprint: core.SystemFingerprint,
	}
}

// StripModelNamespace removes the leading namespace segment from every
// model identifier, preserving order and count.
func StripModelNamespace(models []core.GeminiModelInfo) []string {
	names := make([]string, 0, len(models))
	for _, model := range models {
		names = append(names, strings.TrimPrefix(model.Name, core.GeminiModelNamespace))
	}
	return names
}
