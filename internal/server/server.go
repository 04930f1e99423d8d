package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gemini2api/internal/config"
	"gemini2api/internal/core"
	"gemini2api/internal/gemini"
	"gemini2api/internal/metrics"
	"gemini2api/internal/util"

	"github.com/gin-gonic/gin"
)

// Server application server
type Server struct {
	port    string
	ginMode string

	geminiClient *gemini.Client
	httpClient   *http.Client
	router       *gin.Engine

	metricsService *metrics.MetricsService

	validClientKeys map[string]bool
	idGenerator     core.IDGenerator

	config config.ServerConfig

	rateLimiter *rateLimiter

	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewServer creates a new server instance
func NewServer(cfg config.ServerConfig) (*Server, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required in ServerConfig")
	}
	if cfg.Storage == nil {
		return nil, fmt.Errorf("storage is required in ServerConfig")
	}

	httpClient := createOptimizedHTTPClient(cfg.HTTPClientSettings)

	metricsService := metrics.NewMetricsService(metrics.MetricsConfig{
		SaveInterval: core.MinSaveInterval,
		HistorySize:  core.HistoryBufferSize,
		Storage:      cfg.Storage,
		Logger:       cfg.Logger,
	})

	if err := metricsService.LoadStats(); err != nil {
		cfg.Logger.Warn("Failed to load historical stats: %v", err)
	}

	geminiClient := gemini.NewClient(gemini.ClientConfig{
		BaseURL:    cfg.GeminiBaseURL,
		APIKey:     cfg.GeminiAPIKey,
		HTTPClient: httpClient,
		Logger:     cfg.Logger,
	})

	validClientKeys := make(map[string]bool)
	for _, key := range cfg.ClientAPIKeys {
		validClientKeys[key] = true
	}

	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = config.DefaultRateLimit
	}

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	server := &Server{
		port:            cfg.Port,
		ginMode:         cfg.GinMode,
		geminiClient:    geminiClient,
		httpClient:      httpClient,
		metricsService:  metricsService,
		validClientKeys: validClientKeys,
		idGenerator:     &util.RandomIDGenerator{},
		config:          cfg,
		rateLimiter:     newRateLimiter(rateLimit),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
	}

	server.setupRoutes()

	return server, nil
}

func createOptimizedHTTPClient(settings config.HTTPClientSettings) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          settings.MaxIdleConns,
		MaxIdleConnsPerHost:   settings.MaxIdleConnsPerHost,
		MaxConnsPerHost:       settings.MaxConnsPerHost,
		IdleConnTimeout:       settings.IdleConnTimeout,
		TLSHandshakeTimeout:   settings.TLSHandshakeTimeout,
		ExpectContinueTimeout: core.HTTPExpectContinueTimeout,
		DisableKeepAlives:     false,
		ForceAttemptHTTP2:     true,
		ResponseHeaderTimeout: core.HTTPResponseHeaderTimeout,
		DisableCompression:    false,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   settings.RequestTimeout,
	}
}

// Run runs the server
func (s *Server) Run() error {
	s.setupGracefulShutdown()

	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute,
	}

	go func() {
		<-s.shutdownCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.config.Logger.Error("Server shutdown error: %v", err)
		}
	}()

	s.config.Logger.Info("Server starting on port %s", s.port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (s *Server) setupGracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		s.config.Logger.Info("Shutdown signal received, shutting down gracefully...")
		s.shutdownCancel()
	}()
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) getStatsData(c *gin.Context) {
	stats := s.metricsService.GetRequestStats()
	periodStats := metrics.GetPeriodStats(stats.RequestHistory, 24, 24*7, 24*30)

	successRate := 0.0
	if stats.TotalRequests > 0 {
		successRate = float64(stats.SuccessfulRequests) / float64(stats.TotalRequests) * 100
	}

	var avgResponseTime int64
	if stats.TotalRequests > 0 {
		avgResponseTime = stats.TotalResponseTime / stats.TotalRequests
	}

	c.JSON(http.StatusOK, gin.H{
		"currentTime":     time.Now().Format(core.TimeFormatDateTime),
		"currentQPS":      fmt.Sprintf("%.3f", s.metricsService.GetQPS()),
		"totalRequests":   stats.TotalRequests,
		"successRate":     successRate,
		"avgResponseTime": avgResponseTime,
		"totalRecords":    len(stats.RequestHistory),
		"stats24h":        periodStats[24],
		"stats7d":         periodStats[24*7],
		"stats30d":        periodStats[24*30],
	})
}

// Close closes the server
func (s *Server) Close() error {
	if s.shutdownCancel != nil {
		s.shutdownCancel()
	}

	var closeErr error

	if s.metricsService != nil {
		if err := s.metricsService.Close(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("close metrics service: %w", err))
		}
	}

	return closeErr
}
