package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub/handlers"
	"foodhub/middleware"
	"foodhub/models"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// Every route waits for the store to finish rehydrating; see
	// middleware.StoreReady.
	r.Use(middleware.StoreReady(h.Store))

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)

		// Catalog & ratings (no auth needed)
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.GET("/restaurants/:id/menu", h.GetMenu)
		public.GET("/menu/:itemId", h.GetMenuItem)

		// Lifecycle docs and the notification slot
		public.GET("/order-statuses", h.GetOrderStatuses)
		public.GET("/toast", h.GetToast)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/auth/logout", h.Logout)
		auth.GET("/profile", h.GetProfile)
		auth.GET("/profile/theme", h.GetTheme)
		auth.PUT("/profile/theme", h.SetTheme)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart/items", h.AddToCart)
		customer.PUT("/cart/items/:itemId", h.UpdateCartItem)
		customer.PUT("/session/restaurant/:id", h.SelectRestaurant)

		customer.POST("/orders", h.Checkout)
		customer.GET("/orders", h.GetMyOrders)
		customer.GET("/orders/:id", h.GetOrderDetail)

		customer.POST("/reviews", h.SubmitReview)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// Catch-all: a static not-found body, no redirect.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})
}
