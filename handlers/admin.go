package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub/models"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Dashboard returns the admin aggregates: order counts, revenue, the
// ten most recent orders, and the review feed. Total revenue sums the
// whole ledger; delivered revenue only completed orders.
func (h *Handler) Dashboard(c *gin.Context) {
	orders := h.Store.Orders()

	var totalRevenue, deliveredRevenue float64
	pending := 0
	for _, o := range orders {
		totalRevenue += o.Total
		if o.Status == models.StatusDelivered {
			deliveredRevenue += o.Total
		}
		if o.Status == models.StatusPreparing {
			pending++
		}
	}

	// Newest first, capped at 10.
	recent := make([]models.Order, 0, 10)
	for i := len(orders) - 1; i >= 0 && len(recent) < 10; i-- {
		recent = append(recent, orders[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":      len(orders),
		"total_revenue":     totalRevenue,
		"delivered_revenue": deliveredRevenue,
		"pending_orders":    pending,
		"recent_orders":     recent,
		"review_feed":       h.Store.ReviewFeed(8),
	})
}

// UpdateOrderStatus sets an order's status. Any known status is
// accepted regardless of the current one; only unknown statuses and
// unknown orders are refused.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SetOrderStatus(orderID, req.Status); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Order " + orderID + " updated to \"" + req.Status + "\"",
		"order_id":   orderID,
		"new_status": req.Status,
	})
}
