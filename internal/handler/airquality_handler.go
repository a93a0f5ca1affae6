package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/airaware/cleanmap-backend-go/internal/models"
	"github.com/airaware/cleanmap-backend-go/internal/service"
	"github.com/airaware/cleanmap-backend-go/pkg/response"
)

// AirQualityHandler handles HTTP requests for readings and the
// combined air-quality summary
type AirQualityHandler struct {
	service *service.AirQualityService
}

// NewAirQualityHandler creates a new air quality handler
func NewAirQualityHandler(service *service.AirQualityService) *AirQualityHandler {
	return &AirQualityHandler{service: service}
}

func parseAnchor(c *gin.Context) (models.Anchor, bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		response.BadRequest(c, "Missing latitude or longitude", nil)
		return models.Anchor{}, false
	}

	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		response.BadRequest(c, "Invalid coordinates format", nil)
		return models.Anchor{}, false
	}

	anchor := models.Anchor{Lat: lat, Lon: lon}
	if !anchor.Valid() {
		response.BadRequest(c, "Coordinates out of range", nil)
		return models.Anchor{}, false
	}
	return anchor, true
}

// GetSummary handles GET /api/airquality
func (h *AirQualityHandler) GetSummary(c *gin.Context) {
	anchor, ok := parseAnchor(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), anchor)
	if err != nil {
		response.InternalError(c, "Failed to build air quality summary", err)
		return
	}

	// The frontend consumes this payload directly, without the
	// code/message envelope the v1 endpoints use.
	c.JSON(200, summary)
}

// GetReadings handles GET /api/v1/readings
func (h *AirQualityHandler) GetReadings(c *gin.Context) {
	anchor, ok := parseAnchor(c)
	if !ok {
		return
	}

	readings, err := h.service.Readings(c.Request.Context(), anchor)
	if err != nil {
		response.InternalError(c, "Failed to fetch readings", err)
		return
	}

	response.Success(c, gin.H{
		"anchor":   anchor,
		"readings": readings,
		"count":    len(readings),
	})
}
