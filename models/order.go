package models

import "time"

// OrderStatus represents all possible states of a food order
type OrderStatus string

const (
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
)

// CartLine is one menu item and its requested quantity. The menu item is
// an embedded snapshot of the catalog entry at the time it was added, not
// a reference, so later catalog changes never rewrite carts or orders.
type CartLine struct {
	MenuItem MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
}

// Order is immutable once placed except for Status, which only an admin
// may change. Orders are never deleted.
type Order struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	RestaurantID   string      `json:"restaurant_id"`
	RestaurantName string      `json:"restaurant_name"`
	Items          []CartLine  `json:"items"`
	Total          float64     `json:"total"`
	Status         OrderStatus `json:"status"`
	Address        string      `json:"address"`
	Phone          string      `json:"phone"`
	Notes          string      `json:"notes"`
	CreatedAt      time.Time   `json:"created_at"`
}
