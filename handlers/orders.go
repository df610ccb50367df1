package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"foodhub/middleware"
	"foodhub/store"
	"foodhub/toast"
)

type CheckoutRequest struct {
	Address string `json:"address" validate:"required,min=10"`
	Phone   string `json:"phone" validate:"required,phone"`
	Notes   string `json:"notes"`
}

var phoneRe = regexp.MustCompile(`^\d{10,15}$`)

// checkoutValidate runs the field-level checkout rules. The store does
// not re-check these; violations must never reach the ledger.
var checkoutValidate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}()

// checkoutFieldErrors maps validation failures to the inline messages
// shown next to each field.
func checkoutFieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Address":
			out["address"] = "Please enter a valid address (at least 10 characters)"
		case "Phone":
			out["phone"] = "Please enter a valid phone number (10-15 digits)"
		}
	}
	return out
}

// Checkout places an order from the current cart. Address and phone
// are trimmed then validated here; the store only sees clean input.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := checkoutValidate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": checkoutFieldErrors(err)})
		return
	}

	order, err := h.Store.PlaceOrder(store.OrderInput{
		Address: req.Address,
		Phone:   req.Phone,
		Notes:   req.Notes,
		Total:   h.Store.Total(),
	})
	if err != nil {
		if errors.Is(err, store.ErrNoRestaurant) {
			h.Toasts.Notify("Please select a restaurant before checking out", toast.Error)
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.Toasts.Notify("Order placed successfully!", toast.Success)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// GetMyOrders returns the caller's orders, newest first.
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders := h.Store.OrdersForUser(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order, owner only.
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, ok := h.Store.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
