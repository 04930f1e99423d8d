package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemini2api/internal/core"
	"gemini2api/internal/util"
)

// countingTransport counts round trips so tests can assert that no network
// call was attempted.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("network disabled in test")
}

func newTestClient(t *testing.T, apiKey string, upstream http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		APIKey:     apiKey,
		HTTPClient: srv.Client(),
		Logger:     &core.NopLogger{},
	})
	return client, srv
}

func TestListModels_Success(t *testing.T) {
	var gotPath, gotKey string
	client, _ := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"models":[{"name":"models/gemini-1.5-flash"},{"name":"models/gemini-1.5-pro"}]}`))
	})

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}

	if gotPath != "/models" {
		t.Errorf("Expected path '/models', got '%s'", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("Expected API key in query string, got '%s'", gotKey)
	}
	if len(models) != 2 {
		t.Fatalf("Expected 2 models, got %d", len(models))
	}
	if models[0].Name != "models/gemini-1.5-flash" {
		t.Errorf("Expected raw namespaced identifier, got '%s'", models[0].Name)
	}
}

func TestListModels_MissingAPIKey(t *testing.T) {
	transport := &countingTransport{}
	client := NewClient(ClientConfig{
		APIKey:     "",
		HTTPClient: &http.Client{Transport: transport},
	})

	_, err := client.ListModels(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if !core.IsConfigurationError(err) {
		t.Errorf("Expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), core.ErrMsgAPIKeyNotSet) {
		t.Errorf("Expected message '%s', got '%s'", core.ErrMsgAPIKeyNotSet, err.Error())
	}
	if transport.calls != 0 {
		t.Errorf("Expected zero network calls, got %d", transport.calls)
	}
}

func TestListModels_UpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"internal"}}`, http.StatusInternalServerError)
	})

	_, err := client.ListModels(context.Background())
	if err == nil {
		t.Fatal("Expected error for upstream 500")
	}
	if !core.IsUpstreamError(err) {
		t.Errorf("Expected upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), core.ErrMsgUpstreamListModels) {
		t.Errorf("Expected message '%s', got '%s'", core.ErrMsgUpstreamListModels, err.Error())
	}
}

func TestGenerateContent_Success(t *testing.T) {
	var gotPath string
	var gotBody core.GeminiGenerateRequest
	client, _ := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := util.UnmarshalJSON(readAll(t, r), &gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates":[{"content":{"parts":[{"text":"Hi there"}],"role":"model"},"finishReason":"STOP"}],
			"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":5,"totalTokenCount":8}
		}`))
	})

	contents := []core.GeminiContent{{Parts: []core.GeminiPart{{Text: "Hello"}}}}
	resp, err := client.GenerateContent(context.Background(), "gemini-1.5-flash", contents)
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}

	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("Unexpected request path '%s'", gotPath)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("Upstream should receive exactly the shaped contents, got %+v", gotBody.Contents)
	}
	if gotBody.Contents[0].Parts[0].Text != "Hello" {
		t.Errorf("Expected prompt text forwarded, got '%s'", gotBody.Contents[0].Parts[0].Text)
	}

	if len(resp.Candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(resp.Candidates))
	}
	if resp.Candidates[0].FinishReason != "STOP" {
		t.Errorf("Expected upstream finish reason preserved, got '%s'", resp.Candidates[0].FinishReason)
	}
	if resp.UsageMetadata.TotalTokenCount != 8 {
		t.Errorf("Expected total token count 8, got %d", resp.UsageMetadata.TotalTokenCount)
	}
}

func TestGenerateContent_MissingAPIKey(t *testing.T) {
	transport := &countingTransport{}
	client := NewClient(ClientConfig{
		APIKey:     "",
		HTTPClient: &http.Client{Transport: transport},
	})

	_, err := client.GenerateContent(context.Background(), "gemini-1.5-flash", nil)
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if !core.IsConfigurationError(err) {
		t.Errorf("Expected configuration error, got %v", err)
	}
	if transport.calls != 0 {
		t.Errorf("Expected zero network calls, got %d", transport.calls)
	}
}

func TestGenerateContent_UpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.GenerateContent(context.Background(), "gemini-1.5-flash", nil)
	if err == nil {
		t.Fatal("Expected error for upstream 429")
	}
	if !core.IsUpstreamError(err) {
		t.Errorf("Expected upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), core.ErrMsgUpstreamGenerate) {
		t.Errorf("Expected message '%s', got '%s'", core.ErrMsgUpstreamGenerate, err.Error())
	}
}

func TestGenerateContent_MalformedUpstreamBody(t *testing.T) {
	client, _ := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.GenerateContent(context.Background(), "gemini-1.5-flash", nil)
	if err == nil {
		t.Fatal("Expected error for malformed upstream body")
	}
	if !core.IsUpstreamError(err) {
		t.Errorf("Expected upstream error, got %v", err)
	}
}

func readAll(t *testing.T, r *http.Request) []byte {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("Failed to read request body: %v", err)
	}
	return data
}
