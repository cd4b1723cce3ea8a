package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rfp-backend/internal/catalog"
	"rfp-backend/internal/proposals"
	"rfp-backend/internal/rfpdocs"
	"rfp-backend/internal/shared/config"
	"rfp-backend/internal/shared/metrics"
	"rfp-backend/internal/shared/server/middleware"
	"rfp-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router needs. Construction happens in
// bootstrap so tests can swap repositories before routes are wired.
type RouterDeps struct {
	Config          config.Config
	CatalogHandler  *catalog.Handler
	DocumentHandler *rfpdocs.Handler
	ProposalHandler *proposals.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"PROPOSAL_CREATE": {Rate: 0.5, Burst: 5},
				"DEFAULT":         {Rate: 5, Burst: 20},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/proposals" {
					return "PROPOSAL_CREATE"
				}
				return ""
			},
		}),
	)

	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.ProposalHandler != nil {
		deps.ProposalHandler.RegisterRoutes(api)
	}

	return r
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
