package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub/middleware"
	"foodhub/models"
	"foodhub/store"
)

type LoginRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
}

// Login creates the session actor and returns a signed token. There is
// no credential store: the password is accepted, hashed into the actor
// record, and never compared against anything.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != "" && !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer or admin"})
		return
	}

	actor, err := h.Store.Login(store.Credentials{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, err := middleware.GenerateToken(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome " + actor.Name + "!",
		"token":   token,
		"user": gin.H{
			"id":    actor.ID,
			"name":  actor.Name,
			"email": actor.Email,
			"role":  actor.Role,
		},
	})
}

// Logout clears the session actor and the cart.
func (h *Handler) Logout(c *gin.Context) {
	h.Store.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetProfile returns the current session actor.
func (h *Handler) GetProfile(c *gin.Context) {
	actor := h.Store.CurrentUser()
	if actor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": actor})
}
