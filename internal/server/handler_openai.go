package server

import (
	"net/http"
	"time"

	"gemini2api/internal/convert"
	"gemini2api/internal/core"

	"github.com/gin-gonic/gin"
)

func (s *Server) listModels(c *gin.Context) {
	startTime := time.Now()
	defer withPanicRecovery(c, s.metricsService, startTime, endpointModels, core.ErrMsgFetchModels, s.config.Logger.Error)()
	defer trackPerformanceWithMetrics(s.metricsService, startTime)()

	models, err := s.geminiClient.ListModels(c.Request.Context())
	if err != nil {
		s.config.Logger.Error("Failed to list models: %v", err)
		recordRequestResultWithMetrics(s.metricsService, false, startTime, "", endpointModels)
		respondWithFixedError(c, http.StatusInternalServerError, core.ErrMsgFetchModels)
		return
	}

	recordRequestResultWithMetrics(s.metricsService, true, startTime, "", endpointModels)
	c.JSON(http.StatusOK, convert.StripModelNamespace(models))
}

func (s *Server) chatCompletions(c *gin.Context) {
	startTime := time.Now()
	defer withPanicRecovery(c, s.metricsService, startTime, endpointCompletions, core.ErrMsgGenerateResponse, s.config.Logger.Error)()
	defer trackPerformanceWithMetrics(s.metricsService, startTime)()

	// Lenient input handling: an unparseable body degrades to the
	// all-defaults request instead of a 400.
	var request core.CompletionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.config.Logger.Warn("Malformed completion request body, applying defaults: %v", err)
		request = core.CompletionRequest{}
	}
	convert.ApplyDefaults(&request)

	contents := convert.BuildContents(request)

	upstream, err := s.geminiClient.GenerateContent(c.Request.Context(), request.Model, contents)
	if err != nil {
		s.config.Logger.Error("Failed to generate completion: %v", err)
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model, endpointCompletions)
		respondWithFixedError(c, http.StatusInternalServerError, core.ErrMsgGenerateResponse)
		return
	}

	response := convert.GeminiToCompletionResponse(request.Model, upstream, s.idGenerator, time.Now())

	recordRequestResultWithMetrics(s.metricsService, true, startTime, request.Model, endpointCompletions)
	c.JSON(http.StatusOK, response)
}
