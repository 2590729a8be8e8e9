package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/analyses"
	"jobfit-backend/internal/documents"
	"jobfit-backend/internal/llm/openai"
	"jobfit-backend/internal/shared/config"
	"jobfit-backend/internal/shared/metrics"
	"jobfit-backend/internal/shared/server/middleware"
	"jobfit-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroupFor,
			Rules: map[string]middleware.RateLimitRule{
				"LLM": {Rate: 0.5, Burst: 5},
			},
		}),
	)

	// Dependencies
	chatClient, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	analysisHandler := analyses.NewHandler(analyses.NewService(chatClient))

	var extractor documents.TextExtractor
	if cfg.ExtractionMethod == "local" {
		extractor = documents.LocalExtractor{}
	} else {
		assistantsClient, err := openai.NewAssistantsClient(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}
		extractor = &documents.Service{Processor: assistantsClient, Model: cfg.AssistantModel}
	}
	docHandler := documents.NewHandler(extractor, cfg.Env)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	analysisHandler.RegisterRoutes(api)
	docHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r, nil
}

// rateLimitGroupFor throttles only the two LLM-backed routes; everything
// else (health, metrics, preflight) passes through unlimited.
func rateLimitGroupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/api/analyze", "/api/parse-resume":
		return "LLM"
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
