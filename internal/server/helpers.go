package server

import (
	"net/http"
	"time"

	"gemini2api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Endpoint identifiers for request history records.
const (
	endpointModels      = "models"
	endpointCompletions = "chat_completions"
)

// respondWithFixedError returns the fixed, non-specific error payload.
// The underlying failure is only ever logged server-side.
func respondWithFixedError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// trackPerformanceWithMetrics records request duration on handler exit
func trackPerformanceWithMetrics(m *metrics.MetricsService, startTime time.Time) func() {
	return func() {
		m.RecordHTTPRequest(time.Since(startTime))
	}
}

// recordRequestResultWithMetrics records request result
func recordRequestResultWithMetrics(m *metrics.MetricsService, success bool, startTime time.Time, model, endpoint string) {
	if success {
		metrics.RecordSuccessWithMetrics(m, startTime, model, endpoint)
	} else {
		metrics.RecordFailureWithMetrics(m, startTime, model, endpoint)
	}
}

// withPanicRecovery wraps a handler body with panic recovery that converts
// the panic into the endpoint's fixed error response.
func withPanicRecovery(c *gin.Context, m *metrics.MetricsService, startTime time.Time, endpoint, message string, logError func(format string, args ...any)) func() {
	return func() {
		if r := recover(); r != nil {
			logError("Panic in handler: %v", r)
			metrics.RecordFailureWithMetrics(m, startTime, "", endpoint)
			respondWithFixedError(c, http.StatusInternalServerError, message)
		}
	}
}
