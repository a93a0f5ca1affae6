package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airaware/cleanmap-backend-go/internal/config"
	"github.com/airaware/cleanmap-backend-go/internal/database"
	"github.com/airaware/cleanmap-backend-go/internal/datasource"
	"github.com/airaware/cleanmap-backend-go/internal/handler"
	"github.com/airaware/cleanmap-backend-go/internal/middleware"
	"github.com/airaware/cleanmap-backend-go/internal/repository"
	"github.com/airaware/cleanmap-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	db := database.GetDB()

	// 外部数据源，限流包装
	airSource := datasource.NewRateLimitedAirQualitySource(
		datasource.NewOpenAQSource(cfg.OpenAQAPIKey), 1, 3)
	weatherSource := datasource.NewRateLimitedWeatherSource(
		datasource.NewOpenWeatherSource(cfg.OpenWeatherAPIKey), 1, 3)
	fireSource := datasource.NewRateLimitedFireSource(
		datasource.NewFIRMSSource(cfg.FIRMSAPIKey), 0.5, 2)

	airQualityService := service.NewAirQualityService(
		airSource, weatherSource, repository.NewReadingRepository(db))
	firesService := service.NewFiresService(fireSource, repository.NewFireRepository(db))
	overlayService := service.NewOverlayService()

	airQualityHandler := handler.NewAirQualityHandler(airQualityService)
	firesHandler := handler.NewFiresHandler(firesService)
	overlayHandler := handler.NewOverlayHandler(overlayService)
	adminHandler := handler.NewAdminHandler()

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "CleanMap backend is running",
		})
	})

	// 旧版前端直接消费的接口
	r.GET("/api/airquality", airQualityHandler.GetSummary)
	r.GET("/api/fires", firesHandler.GetFires)
	r.GET("/api/fires/wms", firesHandler.GetWMSInfo)

	// API 路由组
	api := r.Group("/api/v1")
	{
		api.GET("/readings", airQualityHandler.GetReadings)
		api.GET("/overlay", overlayHandler.GetOverlay)
		api.DELETE("/overlay", overlayHandler.ClearOverlay)

		admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret))
		{
			admin.POST("/cache/purge", adminHandler.PurgeCache)
		}
	}

	return r
}
