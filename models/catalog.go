package models

// Restaurant is a catalog entry. The catalog is seeded at startup and
// immutable, so there are no timestamps or owner links.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	DeliveryTime string   `json:"delivery_time"`
	MinimumOrder float64  `json:"minimum_order"`
	Categories   []string `json:"categories"`
}

type MenuItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
}
