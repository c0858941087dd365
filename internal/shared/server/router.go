package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"study-backend/internal/services/health"
	"study-backend/internal/shared/config"
	"study-backend/internal/shared/metrics"
	"study-backend/internal/shared/server/middleware"
	"study-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps are the handlers and services the router mounts.
type RouterDeps struct {
	Config       config.Config
	Health       *health.Service
	StudyHandler RouteRegistrar
	// Limiter is shared across requests; nil builds a fresh one.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	cfg := deps.Config

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Check(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})

	limited := api.Group("")
	limited.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: middleware.StudyRateLimitGroup,
		Limiter:  deps.Limiter,
		Rules: map[string]middleware.RateLimitRule{
			middleware.RateLimitGenerate: middleware.PerMinute(cfg.GenerateRatePerMinute),
			middleware.RateLimitExport:   middleware.PerMinute(cfg.ExportRatePerMinute),
		},
	}))
	if deps.StudyHandler != nil {
		deps.StudyHandler.RegisterRoutes(limited)
	}

	if cfg.StaticDir != "" {
		r.NoRoute(staticFallback(cfg.StaticDir))
	}

	return r
}

// staticFallback serves the front-end: /writer maps to writer.html, existing
// files are served as-is, everything else gets index.html.
func staticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
			return
		}
		rel := strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/")
		if strings.HasPrefix(rel, "api/") {
			respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
			return
		}
		if rel == "writer" {
			rel = "writer.html"
		}
		if rel != "" {
			full := filepath.Join(dir, rel)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.String(http.StatusNotFound, "index.html not found")
			return
		}
		c.File(index)
	}
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
