package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub/store"
)

type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the cart lines with the subtotal, the flat delivery
// fee, and the total.
func (h *Handler) GetCart(c *gin.Context) {
	lines := h.Store.Cart()
	c.JSON(http.StatusOK, gin.H{
		"items":        lines,
		"subtotal":     h.Store.Subtotal(),
		"delivery_fee": store.DeliveryFee,
		"total":        h.Store.Total(),
	})
}

// AddToCart adds one unit of a menu item to the cart.
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.AddToCart(req.MenuItemID); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	item, _ := h.Catalog.MenuItemByID(req.MenuItemID)
	c.JSON(http.StatusOK, gin.H{
		"message": item.Name + " added to cart",
		"cart":    h.Store.Cart(),
	})
}

// UpdateCartItem sets a line's quantity exactly; zero or less removes
// the line. There is no confirmation step for removal, matching the
// product's toast-only feedback contract.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Store.UpdateQuantity(c.Param("itemId"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{"cart": h.Store.Cart()})
}

// SelectRestaurant records which restaurant the session is ordering
// from; checkout requires it.
func (h *Handler) SelectRestaurant(c *gin.Context) {
	if err := h.Store.SelectRestaurant(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	r, _ := h.Store.SelectedRestaurant()
	c.JSON(http.StatusOK, gin.H{"message": "Ordering from " + r.Name, "restaurant": r})
}
