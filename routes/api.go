package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/desprit/geoparse/app/controllers"
)

// SetupAPIRoutes wires the versioned API surface.
func SetupAPIRoutes(router *gin.Engine, locations *controllers.LocationController) {
	v1 := router.Group("/v1")
	{
		group := v1.Group("/locations")
		{
			group.POST("/parse", locations.ParseLocation)
			group.POST("/parse/batch", locations.ParseBatch)
			group.GET("/suggest", locations.Suggest)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/cache/stats", locations.CacheStats)
			admin.POST("/cache/clear", locations.ClearCache)
		}

		v1.GET("/health", locations.HealthCheck)
	}
}

// SetupHealthRoutes exposes the unversioned probes.
func SetupHealthRoutes(router *gin.Engine, locations *controllers.LocationController) {
	router.GET("/health", locations.HealthCheck)
	router.GET("/ready", locations.HealthCheck)
	router.GET("/live", locations.HealthCheck)
}

// SetupAllRoutes installs middleware and every route group.
func SetupAllRoutes(router *gin.Engine, locations *controllers.LocationController, logger *zap.Logger) {
	setupMiddleware(router, logger)
	SetupHealthRoutes(router, locations)
	SetupAPIRoutes(router, locations)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
}

// requestLogger logs one structured line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}
