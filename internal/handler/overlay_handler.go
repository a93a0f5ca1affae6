package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/airaware/cleanmap-backend-go/internal/models"
	"github.com/airaware/cleanmap-backend-go/internal/overlay"
	"github.com/airaware/cleanmap-backend-go/internal/service"
	"github.com/airaware/cleanmap-backend-go/pkg/response"
)

// OverlayHandler handles HTTP requests for the pollution footprint
type OverlayHandler struct {
	service *service.OverlayService
}

// NewOverlayHandler creates a new overlay handler
func NewOverlayHandler(service *service.OverlayService) *OverlayHandler {
	return &OverlayHandler{service: service}
}

// overlayQuery binds GET /api/v1/overlay parameters. lat, lon and
// value have no binding:"required" because 0 is a legitimate input for
// each of them; presence is checked against the raw query instead.
type overlayQuery struct {
	Lat      float64 `form:"lat"`
	Lon      float64 `form:"lon"`
	Kind     string  `form:"kind" binding:"required"`
	Value    float64 `form:"value"`
	Unstyled bool    `form:"unstyled"`
}

// GetOverlay handles GET /api/v1/overlay
func (h *OverlayHandler) GetOverlay(c *gin.Context) {
	var q overlayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if c.Query("lat") == "" || c.Query("lon") == "" {
		response.BadRequest(c, "Missing latitude or longitude", nil)
		return
	}

	anchor := models.Anchor{Lat: q.Lat, Lon: q.Lon}
	ov, err := h.service.Apply(anchor, models.Kind(q.Kind), q.Value, q.Unstyled)
	if err != nil {
		switch {
		case errors.Is(err, overlay.ErrInvalidAnchor),
			errors.Is(err, overlay.ErrInvalidReading):
			response.BadRequest(c, "Invalid reading input", err)
		case errors.Is(err, overlay.ErrUnsupportedPollutantKind):
			response.Error(c, http.StatusUnprocessableEntity, "Unsupported pollutant kind", err)
		default:
			response.InternalError(c, "Failed to generate overlay", err)
		}
		return
	}

	response.Success(c, gin.H{
		"shapes":   ov,
		"count":    len(ov),
		"hotspots": len(ov) - 2,
	})
}

// ClearOverlay handles DELETE /api/v1/overlay
func (h *OverlayHandler) ClearOverlay(c *gin.Context) {
	h.service.Clear()
	response.Success(c, gin.H{"cleared": true})
}
