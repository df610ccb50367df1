package store

import (
	"strconv"
	"strings"

	"foodhub/models"
	"foodhub/statemachine"
	"foodhub/storage"
	"foodhub/toast"
)

// OrderInput carries the checkout fields. Address and phone format
// validation is the caller's responsibility (the checkout handler);
// the store only enforces the structural preconditions.
type OrderInput struct {
	Address string
	Phone   string
	Notes   string
	Total   float64
}

// PlaceOrder builds an order from the current cart and appends it to
// the ledger. Preconditions: an actor is logged in, a restaurant is
// selected, and the cart is non-empty. On success the cart is cleared
// and both changes are persisted. The new order starts in preparing.
func (s *Store) PlaceOrder(input OrderInput) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, ErrNotAuthenticated
	}
	restaurant, ok := s.catalog.RestaurantByID(s.selectedRestaurant)
	if !ok {
		return nil, ErrNoRestaurant
	}
	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.CartLine, len(s.cart))
	copy(items, s.cart)

	order := models.Order{
		ID:             "ORD" + strings.ToUpper(strconv.FormatInt(s.now().UnixMilli(), 36)),
		UserID:         s.user.ID,
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Items:          items,
		Total:          input.Total,
		Status:         models.StatusPreparing,
		Address:        input.Address,
		Phone:          input.Phone,
		Notes:          input.Notes,
		CreatedAt:      s.now(),
	}

	s.orders = append(s.orders, order)
	s.cart = nil
	s.persistJSON(storage.KeyOrders, s.orders)
	s.persistJSON(storage.KeyCart, []models.CartLine{})

	out := order
	return &out, nil
}

// SetOrderStatus applies an admin-driven status change. The target
// must parse as a known status; beyond that any move is allowed,
// including backwards — see statemachine.AdminTransition.
func (s *Store) SetOrderStatus(orderID, rawStatus string) error {
	status, err := statemachine.Parse(rawStatus)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if err := statemachine.AdminTransition(s.orders[i].Status, status); err != nil {
			return err
		}
		s.orders[i].Status = status
		s.persistJSON(storage.KeyOrders, s.orders)
		s.notify("Order "+orderID+" updated to \""+string(status)+"\"", toast.Success)
		return nil
	}
	return ErrUnknownOrder
}

// Orders returns a copy of the full ledger in placement order.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersForUser returns one user's orders, newest first.
func (s *Store) OrdersForUser(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			out = append(out, s.orders[i])
		}
	}
	return out
}

// OrderByID looks up a single order.
func (s *Store) OrderByID(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}
