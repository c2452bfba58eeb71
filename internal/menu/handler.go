package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Storefront reads the full menu
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	data, refreshedAt := h.service.Snapshot(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"items":        data.Items,
		"config":       data.Config,
		"refreshed_at": refreshedAt,
	})
}

// --------------------------------------------------
// Branding / payment / chat components read config alone
// --------------------------------------------------
func (h *Handler) GetConfig(c *gin.Context) {
	data, _ := h.service.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, data.Config)
}

// --------------------------------------------------
// Owner forces a re-ingest after editing the sheet
// --------------------------------------------------
func (h *Handler) Refresh(c *gin.Context) {
	data, refreshedAt := h.service.Refresh(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"items":        len(data.Items),
		"refreshed_at": refreshedAt,
		"message":      "Menu refreshed from the sheet.",
	})
}
