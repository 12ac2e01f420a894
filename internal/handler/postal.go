package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/postal"
)

type PostalHandler struct {
	client *postal.Client
}

func NewPostalHandler(client *postal.Client) *PostalHandler {
	return &PostalHandler{client: client}
}

// Lookup resolves a PIN code to city/state details. A miss is a plain 404;
// the address form falls back to manual entry.
func (h *PostalHandler) Lookup(c *gin.Context) {
	info, err := h.client.Lookup(c.Request.Context(), c.Param("pin"))
	if err != nil {
		if errors.Is(err, postal.ErrInvalidPin) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pin code"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "pin code not found"})
		return
	}
	c.JSON(http.StatusOK, dto.PostalResponse{
		City:    info.City,
		State:   info.State,
		Country: info.Country,
		Area:    info.Area,
	})
}
