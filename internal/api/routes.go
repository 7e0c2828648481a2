// internal/api/routes.go
package api

import (
	"solar_analysis/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, svc *service.Service) {
	h := NewHandler(svc)

	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/ai_analysis", h.Analyze)
		api.POST("/batch_analysis", h.BatchAnalyze)
		api.POST("/forecast_power", h.ForecastPower)
		api.POST("/detect_anomalies", h.DetectAnomalies)
		api.POST("/analyze_image", h.AnalyzeImage)
		api.GET("/model_info", h.ModelInfo)
	}
}
