package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetTheme returns the persisted theme preference.
func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.Store.Theme()})
}

// SetTheme stores "dark" or "light".
func (h *Handler) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.SetTheme(req.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
