package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/fb-app-events-adapter/internal/auth"
	"github.com/PratikDhanave/fb-app-events-adapter/internal/handlers"
)

// Store is what the router needs from persistence.
type Store interface {
	handlers.EventCounter
	Ping(ctx context.Context) error
}

// NewRouter wires public endpoints and authenticated APIs.
// Public: /health, /ready
// Authenticated: /v1/identify, /v1/track, /v1/screen, /v1/reset,
// /v1/destination-config, /metrics
func NewRouter(apiKeys map[string]string, st Store, reg handlers.Integrations) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Auth group enforces tenant context via X-API-Key.
	authGroup := r.Group("/")
	authGroup.Use(auth.APIKeyMiddleware(apiKeys))

	handlers.RegisterEventRoutes(authGroup, reg)
	handlers.RegisterMetricRoutes(authGroup, st)

	return r
}
