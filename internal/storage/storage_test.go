package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gemini2api/internal/core"
)

func TestFileStorage_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	fs := NewFileStorage(path)

	stats := &core.RequestStats{
		TotalRequests:      5,
		SuccessfulRequests: 4,
		FailedRequests:     1,
		TotalResponseTime:  500,
		LastRequestTime:    time.Now().Truncate(time.Second),
		RequestHistory: []core.RequestRecord{
			{Success: true, ResponseTime: 100, Model: "gemini-1.5-flash", Endpoint: "chat_completions"},
		},
	}

	if err := fs.SaveStats(stats); err != nil {
		t.Fatalf("SaveStats failed: %v", err)
	}

	loaded, err := fs.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if loaded.TotalRequests != 5 || loaded.SuccessfulRequests != 4 {
		t.Errorf("Counters mismatch after round trip: %+v", loaded)
	}
	if len(loaded.RequestHistory) != 1 {
		t.Fatalf("Expected 1 history record, got %d", len(loaded.RequestHistory))
	}
	if loaded.RequestHistory[0].Model != "gemini-1.5-flash" {
		t.Errorf("History record mismatch: %+v", loaded.RequestHistory[0])
	}
}

func TestFileStorage_LoadMissingFile(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "does-not-exist.json"))

	stats, err := fs.LoadStats()
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if stats.TotalRequests != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
	if stats.RequestHistory == nil {
		t.Error("RequestHistory should be initialized, not nil")
	}
}

func TestFileStorage_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	fs := NewFileStorage(path)

	if err := os.WriteFile(path, []byte("not json"), core.FilePermissionReadWrite); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}
	if _, err := fs.LoadStats(); err == nil {
		t.Error("Expected error loading corrupt stats file")
	}
}

func TestNewFileStorage_DefaultPath(t *testing.T) {
	fs := NewFileStorage("")
	if fs.filePath != core.StatsFilePath {
		t.Errorf("Expected default path '%s', got '%s'", core.StatsFilePath, fs.filePath)
	}
}

func TestNewRedisStorage_InvalidURL(t *testing.T) {
	if _, err := NewRedisStorage(RedisStorageConfig{URL: "not-a-url"}); err == nil {
		t.Error("Expected error for invalid Redis URL")
	}
}
