package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/airaware/cleanmap-backend-go/internal/repository"
	"github.com/airaware/cleanmap-backend-go/pkg/response"
)

// AdminHandler handles the JWT-protected maintenance endpoints
type AdminHandler struct{}

// NewAdminHandler creates a new admin handler
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// PurgeCache handles POST /api/v1/admin/cache/purge
func (h *AdminHandler) PurgeCache(c *gin.Context) {
	if err := repository.PurgeCaches(); err != nil {
		response.InternalError(c, "Failed to purge caches", err)
		return
	}
	response.Success(c, gin.H{"purged": true})
}
