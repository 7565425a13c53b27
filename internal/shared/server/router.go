package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pia-backend/internal/assessment"
	"pia-backend/internal/assessment/catalog"
	"pia-backend/internal/assessments"
	"pia-backend/internal/services/health"
	"pia-backend/internal/shared/config"
	"pia-backend/internal/shared/server/middleware"
	"pia-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// The catalog is loaded and validated by the caller so that a malformed
// catalog is fatal at startup, not at request time.
func NewRouter(cfg config.Config, cat *catalog.Catalog) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 5, Burst: 20},
			},
		}),
	)

	// Dependencies
	repo := assessments.NewMemoryRepo()
	svc := &assessments.Service{Repo: repo, Catalog: cat}
	handler := assessments.NewHandler(svc)
	healthSvc := health.NewService()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	registerCatalogRoutes(api, cat)
	handler.RegisterRoutes(api)

	return r
}

// registerCatalogRoutes exposes the read-only reference data consumed by the
// dashboard's selection and weighting widgets.
func registerCatalogRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	rg.GET("/catalog/tools", func(c *gin.Context) {
		respond.OK(c, gin.H{"tools": cat.All()})
	})

	rg.GET("/catalog/dimensions", func(c *gin.Context) {
		dims := make([]gin.H, 0, 3)
		for _, d := range assessment.Dimensions() {
			dims = append(dims, gin.H{
				"id":       d,
				"label":    d.Label(),
				"target":   d.Target(),
				"criteria": d.Criteria(),
			})
		}
		respond.OK(c, gin.H{"dimensions": dims})
	})
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
