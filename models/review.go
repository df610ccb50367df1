package models

import "time"

// Review is tied to a single line item of a delivered order. Immutable
// once created; never deleted.
type Review struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	MenuItemID     string    `json:"menu_item_id"`
	MenuItemName   string    `json:"menu_item_name"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	OrderID        string    `json:"order_id"`
	OrderTotal     float64   `json:"order_total"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

// Rating is the aggregate over a set of reviews.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// StarBucket is one row of a 5-down-to-1 star distribution.
type StarBucket struct {
	Star       int `json:"star"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}
