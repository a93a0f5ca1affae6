package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/airaware/cleanmap-backend-go/internal/models"
	"github.com/airaware/cleanmap-backend-go/internal/service"
	"github.com/airaware/cleanmap-backend-go/pkg/response"
)

// FiresHandler handles HTTP requests for the wildfire layer
type FiresHandler struct {
	service *service.FiresService
}

// NewFiresHandler creates a new fires handler
func NewFiresHandler(service *service.FiresService) *FiresHandler {
	return &FiresHandler{service: service}
}

// GetFires handles GET /api/fires
// Query params: bbox=minLon,minLat,maxLon,maxLat (required), days (optional)
func (h *FiresHandler) GetFires(c *gin.Context) {
	bboxStr := c.Query("bbox")
	if bboxStr == "" {
		response.BadRequest(c, "bbox parameter required (minLon,minLat,maxLon,maxLat)", nil)
		return
	}

	parts := strings.Split(bboxStr, ",")
	if len(parts) != 4 {
		response.BadRequest(c, "bbox must have 4 values", nil)
		return
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			response.BadRequest(c, "Invalid bbox format", err)
			return
		}
		vals[i] = v
	}
	bbox := models.BBox{MinLon: vals[0], MinLat: vals[1], MaxLon: vals[2], MaxLat: vals[3]}
	if !bbox.Valid() {
		response.BadRequest(c, "bbox out of range", nil)
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	fc, err := h.service.Fires(c.Request.Context(), bbox, days)
	if err != nil {
		response.InternalError(c, "Failed to fetch fire data", err)
		return
	}

	// Raw GeoJSON, so map libraries can ingest it directly.
	c.JSON(200, fc)
}

// GetWMSInfo handles GET /api/fires/wms
func (h *FiresHandler) GetWMSInfo(c *gin.Context) {
	c.JSON(200, h.service.WMSInfo())
}
