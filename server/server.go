package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"creative_prompt_service/generator"
	"creative_prompt_service/logger"
	"creative_prompt_service/store"
)

const serviceName = "prompt-generator"

// feedbackTTL: feedback records expire after 30 days.
const feedbackTTL = 30 * 24 * time.Hour

type Server struct {
	svc   *generator.Service
	store store.Store
	log   *logger.Logger
}

func New(svc *generator.Service, st store.Store, log *logger.Logger) (*Server, error) {
	if svc == nil {
		return nil, errors.New("generation service required")
	}
	if st == nil {
		return nil, errors.New("store required")
	}
	return &Server{svc: svc, store: st, log: log.With("component", "server")}, nil
}

func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))

	router.GET("/health", s.handleHealth)
	api := router.Group("/api")
	{
		api.POST("/generate/:kind", s.handleGenerate)
		api.POST("/feedback", s.handleFeedback)
	}
	return router
}

type generateReq struct {
	Categories []string `json:"categories"`
	// Genres is the legacy field name; merged into Categories.
	Genres []string `json:"genres"`
	UserID string   `json:"userId"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	categories := append(req.Categories, req.Genres...)
	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}
	kind := generator.Kind(c.Param("kind"))

	span := trace.SpanFromContext(c.Request.Context())
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("generate.kind", string(kind)),
		attribute.Int("generate.categories.count", len(categories)),
		attribute.String("generate.categories", strings.Join(categories, ",")),
	)

	result, err := s.svc.Generate(c.Request.Context(), generator.Request{
		Kind:       kind,
		Categories: categories,
		UserID:     userID,
	})
	if err != nil {
		var cfgErr *generator.ConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": cfgErr.Reason})
			return
		}
		// Generate only returns ConfigError; anything else is a defect.
		s.log.Error("generate failed unexpectedly", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate"})
		return
	}

	span.SetAttributes(
		attribute.String("result.id", result.ID),
		attribute.String("result.title", result.Title),
	)

	if c.Query("format") == "html" {
		html, err := renderHTML(result)
		if err != nil {
			s.log.Warn("html render failed, serving json", "error", err)
			c.JSON(http.StatusOK, result)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
		return
	}
	c.JSON(http.StatusOK, result)
}

type feedbackReq struct {
	PromptID string `json:"promptId"`
	Rating   int    `json:"rating"`
	UserID   string `json:"userId"`
}

type feedbackRecord struct {
	Rating    int    `json:"rating"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleFeedback(c *gin.Context) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PromptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "promptId is required"})
		return
	}
	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}

	span := trace.SpanFromContext(c.Request.Context())
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("prompt.id", req.PromptID),
		attribute.Int("feedback.rating", req.Rating),
	)

	record, _ := json.Marshal(feedbackRecord{
		Rating:    req.Rating,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	key := "feedback:" + req.PromptID + ":" + userID
	if err := s.store.Set(c.Request.Context(), key, record, feedbackTTL); err != nil {
		s.log.Error("feedback write failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.log.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}
