package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub/store"
)

type SubmitReviewRequest struct {
	OrderID    string `json:"order_id" binding:"required"`
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// SubmitReview creates a review for one line item of the caller's
// delivered order. A missing star selection gets a field-level error
// before the store is involved.
func (h *Handler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": gin.H{"rating": "Please select a rating"},
		})
		return
	}

	review, err := h.Store.SubmitReview(store.ReviewInput{
		OrderID:    req.OrderID,
		MenuItemID: req.MenuItemID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidRating) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors": gin.H{"rating": "Please select a rating"},
			})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted successfully!",
		"review":  review,
	})
}
