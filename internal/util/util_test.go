package util

import (
	"strings"
	"testing"

	"gemini2api/internal/core"
)

func TestRandomIDGenerator_CompletionID(t *testing.T) {
	gen := &RandomIDGenerator{}

	id := gen.CompletionID()
	if !strings.HasPrefix(id, core.ResponseIDPrefix) {
		t.Errorf("Expected '%s' prefix, got '%s'", core.ResponseIDPrefix, id)
	}
	if len(id) != len(core.ResponseIDPrefix)+CompletionIDLength {
		t.Errorf("Expected length %d, got %d", len(core.ResponseIDPrefix)+CompletionIDLength, len(id))
	}

	suffix := strings.TrimPrefix(id, core.ResponseIDPrefix)
	for _, r := range suffix {
		if !strings.ContainsRune(idAlphabet, r) {
			t.Errorf("Unexpected character '%c' in ID suffix", r)
		}
	}
}

func TestRandomIDGenerator_ProducesVaryingIDs(t *testing.T) {
	gen := &RandomIDGenerator{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[gen.CompletionID()] = true
	}
	// Not collision-checked by design, but 100 collisions would mean the
	// generator is broken.
	if len(seen) < 2 {
		t.Error("Generator should produce varying IDs")
	}
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	type sample struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	data, err := MarshalJSON(sample{Name: "abc", Count: 3})
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var decoded sample
	if err := UnmarshalJSON(data, &decoded); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if decoded.Name != "abc" || decoded.Count != 3 {
		t.Errorf("Round trip mismatch: %+v", decoded)
	}
}

func TestParseEnvList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "key1", []string{"key1"}},
		{"multiple with spaces", " key1 , key2 ,key3", []string{"key1", "key2", "key3"}},
		{"trailing comma", "key1,", []string{"key1"}},
		{"only commas", ",,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseEnvList(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Expected %d entries, got %d", len(tt.expected), len(result))
			}
			for i, v := range tt.expected {
				if result[i] != v {
					t.Errorf("Position %d: expected '%s', got '%s'", i, v, result[i])
				}
			}
		})
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("GEMINI2API_TEST_VAR", "set-value")
	if got := GetEnvWithDefault("GEMINI2API_TEST_VAR", "fallback"); got != "set-value" {
		t.Errorf("Expected 'set-value', got '%s'", got)
	}
	if got := GetEnvWithDefault("GEMINI2API_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got '%s'", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdefghij", 2, 2, "..."); got != "ab...ij" {
		t.Errorf("Expected 'ab...ij', got '%s'", got)
	}
	if got := TruncateString("abc", 2, 2, "..."); got != "abc" {
		t.Errorf("Short string should be untouched, got '%s'", got)
	}
}
