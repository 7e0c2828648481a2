package api

import (
	"errors"
	"net/http"
	"time"

	"solar_analysis/internal/domain"
	"solar_analysis/internal/service"
	"solar_analysis/pkg/logger"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// Handler handles HTTP requests
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new handler
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Root handles GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Solar Analysis Service",
		"version": serviceVersion,
		"endpoints": []string{
			"/api/ai_analysis", "/api/batch_analysis", "/api/forecast_power",
			"/api/detect_anomalies", "/api/analyze_image", "/api/model_info",
		},
		"status": "running",
	})
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "Solar Analysis Service",
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Analyze handles POST /api/ai_analysis
func (h *Handler) Analyze(c *gin.Context) {
	var req domain.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Inputs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing inputs in request body"})
		return
	}

	siteID := req.SiteID
	if siteID == "" {
		siteID = "unknown"
	}

	result, err := h.svc.Analyze(*req.Inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.SiteResult{
		PredictionResult: result,
		SiteID:           siteID,
	})
}

// BatchAnalyze handles POST /api/batch_analysis
func (h *Handler) BatchAnalyze(c *gin.Context) {
	var req struct {
		Sites []domain.AnalysisRequest `json:"sites"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Sites == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sites array in request body"})
		return
	}

	results := h.svc.AnalyzeBatch(req.Sites)

	successful := 0
	for _, r := range results {
		if r.Status == "success" {
			successful++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    results,
		"total":      len(results),
		"successful": successful,
	})
}

// ForecastPower handles POST /api/forecast_power
func (h *Handler) ForecastPower(c *gin.Context) {
	var req struct {
		Data         []domain.TimeSeriesPoint `json:"data"`
		ForecastDays int                      `json:"forecast_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	logger.Debugf("Forecast request: %d data points, %d days", len(req.Data), req.ForecastDays)

	result, err := h.svc.Forecast(req.Data, req.ForecastDays)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DetectAnomalies handles POST /api/detect_anomalies
func (h *Handler) DetectAnomalies(c *gin.Context) {
	var req struct {
		Residuals []domain.ResidualPoint `json:"residuals"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	logger.Debugf("Anomaly detection request: %d residual points", len(req.Residuals))

	result, err := h.svc.DetectAnomalies(req.Residuals)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeImage handles POST /api/analyze_image
func (h *Handler) AnalyzeImage(c *gin.Context) {
	var req struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image_url in request body"})
		return
	}

	c.JSON(http.StatusOK, h.svc.ClassifyImage(req.ImageURL))
}

// ModelInfo handles GET /api/model_info
func (h *Handler) ModelInfo(c *gin.Context) {
	engine := h.svc.Engine()

	c.JSON(http.StatusOK, gin.H{
		"model_type":         "physics_closed_form",
		"features":           engine.FeatureNames(),
		"feature_importance": engine.Features(),
		"thresholds":         engine.Thresholds(),
		"version":            serviceVersion,
	})
}

// respondError maps domain errors onto HTTP statuses. Validation and
// insufficient-data failures are client errors; everything else surfaces as
// a 500 with the original message.
func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var dataErr *domain.InsufficientDataError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &dataErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Analysis failed: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
