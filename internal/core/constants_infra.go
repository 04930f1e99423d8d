package core

import "time"

// HTTP client config constants
const (
	HTTPMaxIdleConns          = 500
	HTTPMaxIdleConnsPerHost   = 100
	HTTPMaxConnsPerHost       = 200
	HTTPIdleConnTimeout       = 600 * time.Second
	HTTPTLSHandshakeTimeout   = 30 * time.Second
	HTTPResponseHeaderTimeout = 30 * time.Second
	HTTPExpectContinueTimeout = 5 * time.Second
	HTTPRequestTimeout        = 5 * time.Minute
)

// Stats and monitoring constants
const (
	StatsFilePath        = "stats.json"
	MinSaveInterval      = 5 * time.Second
	HistoryBufferSize    = 1000
	HistoryBatchSize     = 100
	HistoryFlushInterval = 100 * time.Millisecond
)

// Response body size limits
const (
	MaxResponseBodySize = 10 * 1024 * 1024
)

// Logging config constants
const (
	MaxDebugFilePathLength = 260
)

// File permission constants
const (
	FilePermissionReadWrite = 0644
)

// Time format constants
const (
	TimeFormatDateTime = "2006-01-02 15:04:05"
)
