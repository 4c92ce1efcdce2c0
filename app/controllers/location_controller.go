package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/desprit/geoparse/app/config"
	"github.com/desprit/geoparse/app/requests"
	"github.com/desprit/geoparse/app/responses"
	"github.com/desprit/geoparse/app/services"
)

// LocationController handles the location parsing endpoints.
type LocationController struct {
	service *services.LocationService
	logger  *zap.Logger
}

func NewLocationController(service *services.LocationService, logger *zap.Logger) *LocationController {
	return &LocationController{service: service, logger: logger}
}

// ParseLocation handles POST /v1/locations/parse.
func (lc *LocationController) ParseLocation(c *gin.Context) {
	var req requests.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	start := time.Now()
	loc, cached := lc.service.Parse(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, responses.ParseResponse{
		Input:     req.Text,
		Location:  loc,
		Formatted: loc.String(),
		Cached:    cached,
		TookMs:    float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// ParseBatch handles POST /v1/locations/parse/batch.
func (lc *LocationController) ParseBatch(c *gin.Context) {
	var req requests.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	start := time.Now()
	results := make([]responses.ParseResponse, 0, len(req.Texts))
	for _, text := range req.Texts {
		itemStart := time.Now()
		loc, cached := lc.service.Parse(c.Request.Context(), text)
		results = append(results, responses.ParseResponse{
			Input:     text,
			Location:  loc,
			Formatted: loc.String(),
			Cached:    cached,
			TookMs:    float64(time.Since(itemStart).Microseconds()) / 1000.0,
		})
	}
	c.JSON(http.StatusOK, responses.BatchParseResponse{
		Results: results,
		Count:   len(results),
		TookMs:  float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// Suggest handles GET /v1/locations/suggest?q=...&limit=....
func (lc *LocationController) Suggest(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "query parameter q is required",
		})
		return
	}
	limit := config.C.Suggest.MaxResults
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Error:   "INVALID_REQUEST",
				Message: "limit must be a positive integer",
			})
			return
		}
		if n < limit {
			limit = n
		}
	}
	c.JSON(http.StatusOK, responses.SuggestResponse{
		Query:       query,
		Suggestions: lc.service.Suggest(query, limit),
	})
}

// CacheStats handles GET /v1/admin/cache/stats.
func (lc *LocationController) CacheStats(c *gin.Context) {
	stats, err := lc.service.CacheStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ClearCache handles POST /v1/admin/cache/clear.
func (lc *LocationController) ClearCache(c *gin.Context) {
	if err := lc.service.ClearCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// HealthCheck reports liveness.
func (lc *LocationController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
