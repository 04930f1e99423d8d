package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"gemini2api/internal/core"
	"gemini2api/internal/util"
)

// Client wraps the upstream generative-language HTTP API. The API key is
// injected at construction and read-only afterwards; requests sharing one
// Client need no coordination. No retry, no response caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     core.Logger
}

// ClientConfig upstream client configuration
type ClientConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     core.Logger
}

// NewClient creates a new upstream client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = core.GeminiDefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = &core.NopLogger{}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListModels fetches the upstream models listing. Model identifiers are
// returned as-is, namespace prefix included.
func (c *Client) ListModels(ctx context.Context) ([]core.GeminiModelInfo, error) {
	if c.apiKey == "" {
		return nil, core.NewConfigurationError(core.ErrMsgAPIKeyNotSet)
	}

	endpoint := fmt.Sprintf("%s/models?key=%s", c.baseURL, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, core.NewUpstreamError(core.ErrMsgUpstreamListModels, err)
	}
	req.Header.Set(core.HeaderAccept, core.ContentTypeJSON)

	body, err := c.do(req)
	if err != nil {
		return nil, core.NewUpstreamError(core.ErrMsgUpstreamListModels, err)
	}

	var listing core.GeminiModelsResponse
	if err := util.UnmarshalJSON(body, &listing); err != nil {
		return nil, core.NewUpstreamError(core.ErrMsgUpstreamListModels, err)
	}

	return listing.Models, nil
}

// GenerateContent invokes the upstream generateContent call for the given
// model with the given contents.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []core.GeminiContent) (*core.GeminiGenerateResponse, error) {
	if c.apiKey == "" {
		return nil, core.NewConfigurationError(core.ErrMsgAPIKeyNotSet)
	}

	payload := core.GeminiGenerateRequest{Contents: contents}
	payloadBytes, err := util.MarshalJSON(payload)
	if err != nil {
		return nil, core.NewUpstreamError(core.ErrMsgUpstreamGenerate, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, core.NewUpstreamError(core.ErrMsgUpstreamGenerate, err)
	}
	req.Header.Set(core.HeaderContentType, core.ContentTypeJSON)
	req.Header.Set(core.HeaderAccept, core.ContentTypeJSON)

	body, err := c.do(req)
	if err != nil {
		return nil, core.NewUpstreamError(core.ErrMsgUpstreamGenerate, err)
	}

	var result core.GeminiGenerateResponse
	if err := util.UnmarshalJSON(body, &result); err != nil {
		return nil, core.NewUpstreamError(core.ErrMsgUpstreamGenerate, err)
	}

	c.logger.Debug("Gemini generateContent: model=%s, candidates=%d, tokens=%d",
		model, len(result.Candidates), result.UsageMetadata.TotalTokenCount)

	return &result, nil
}

// do executes the request and returns the response body, treating any
// non-2xx status as an error. The upstream body of failed calls is logged,
// never propagated.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, core.MaxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Gemini API error: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return body, nil
}
