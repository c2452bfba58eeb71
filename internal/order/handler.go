package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nhongkham198/SGdelivery/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Customer places an order
// --------------------------------------------------
func (h *Handler) Place(c *gin.Context) {
	var req PlaceRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.Place(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// Customer uploads the payment slip
// --------------------------------------------------
func (h *Handler) UploadSlip(c *gin.Context) {
	orderID := c.Param("id")

	file, header, err := c.Request.FormFile("slip")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slip file is required"})
		return
	}
	defer file.Close()

	url, err := h.service.AttachSlip(c.Request.Context(), orderID, file, header.Filename)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slip_url": url,
		"status":   StatusSlipUploaded,
	})
}

// --------------------------------------------------
// Owner: order log
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// Owner: advance order status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrBadSlipType),
		errors.Is(err, ErrBadStatus):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrItemNotFound),
		errors.Is(err, core.ErrChoiceNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
