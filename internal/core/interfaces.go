package core

import "time"

// Logger interface
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Fatal(format string, args ...any)
}

// StorageInterface storage interface
type StorageInterface interface {
	SaveStats(stats *RequestStats) error
	LoadStats() (*RequestStats, error)
	Close() error
}

// MetricsCollector interface
type MetricsCollector interface {
	RecordHTTPRequest(duration time.Duration)
	RecordHTTPError()
	GetQPS() float64
}

// IDGenerator produces completion response IDs. Injectable so tests can
// assert on deterministic output.
type IDGenerator interface {
	CompletionID() string
}

// NopLogger empty logger implementation
type NopLogger struct{}

func (*NopLogger) Debug(format string, args ...any) {}
func (*NopLogger) Info(format string, args ...any)  {}
func (*NopLogger) Warn(format string, args ...any)  {}
func (*NopLogger) Error(format string, args ...any) {}
func (*NopLogger) Fatal(format string, args ...any) {}

// NopMetrics empty metrics collector implementation
type NopMetrics struct{}

func (*NopMetrics) RecordHTTPRequest(duration time.Duration) {}
func (*NopMetrics) RecordHTTPError()                         {}
func (*NopMetrics) GetQPS() float64                          { return 0 }

// FixedIDGenerator returns a constant ID, for tests.
type FixedIDGenerator struct {
	ID string
}

func (g *FixedIDGenerator) CompletionID() string { return g.ID }
