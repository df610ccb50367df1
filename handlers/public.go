package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodhub/models"
	"foodhub/statemachine"
	"foodhub/store"
)

// ListRestaurants returns the catalog with each restaurant's rating
// aggregate. Optional filters: ?category= matches a restaurant
// category, ?search= matches the name.
func (h *Handler) ListRestaurants(c *gin.Context) {
	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))

	var out []gin.H
	for _, r := range h.Catalog.Restaurants() {
		if category != "" && category != "all" && !hasCategory(r, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		out = append(out, gin.H{
			"restaurant": r,
			"rating":     h.Store.RatingFor(r.ID, store.ScopeRestaurant),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "restaurants": out})
}

// GetRestaurant returns a single restaurant with its rating.
func (h *Handler) GetRestaurant(c *gin.Context) {
	r, ok := h.Catalog.RestaurantByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant": r,
		"rating":     h.Store.RatingFor(r.ID, store.ScopeRestaurant),
	})
}

// GetMenu returns a restaurant's menu, optionally filtered by
// ?category=, with per-item rating aggregates.
func (h *Handler) GetMenu(c *gin.Context) {
	restaurantID := c.Param("id")
	r, ok := h.Catalog.RestaurantByID(restaurantID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	category := c.Query("category")
	if category == "all" {
		category = ""
	}
	items := h.Catalog.MenuByRestaurant(restaurantID, category)

	menu := make([]gin.H, 0, len(items))
	for _, item := range items {
		menu = append(menu, gin.H{
			"item":   item,
			"rating": h.Store.RatingFor(item.ID, store.ScopeMenuItem),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant": r.Name,
		"count":      len(menu),
		"menu":       menu,
	})
}

// GetMenuItem returns one item's detail view: the item, its rating
// aggregate, the 5-to-1 star distribution, and its reviews newest
// first.
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, ok := h.Catalog.MenuItemByID(c.Param("itemId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item":         item,
		"rating":       h.Store.RatingFor(item.ID, store.ScopeMenuItem),
		"distribution": h.Store.StarDistribution(item.ID),
		"reviews":      h.Store.ReviewsForMenuItem(item.ID),
	})
}

// GetOrderStatuses documents the order lifecycle.
func (h *Handler) GetOrderStatuses(c *gin.Context) {
	path := statemachine.ForwardPath()
	flow := make([]gin.H, 0, len(path))
	for _, s := range path {
		flow = append(flow, gin.H{
			"status":   s,
			"next":     statemachine.NextStatuses(s),
			"terminal": statemachine.IsTerminal(s),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"flow":        flow,
		"description": "Nominal order lifecycle. Admins may set any known status directly.",
	})
}

// GetToast returns the latest notification, or a dismissed toast once
// it has expired.
func (h *Handler) GetToast(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toast": h.Toasts.Current()})
}

func hasCategory(r models.Restaurant, category string) bool {
	for _, cat := range r.Categories {
		if cat == category {
			return true
		}
	}
	return false
}
