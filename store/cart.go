package store

import (
	"foodhub/models"
	"foodhub/storage"
	"foodhub/toast"
)

// AddToCart appends or increments the cart line for a catalog item.
// Refused for anonymous callers and for non-customer roles, with an
// error toast either way. A new line embeds a snapshot of the catalog
// item so the cart is self-contained.
func (s *Store) AddToCart(menuItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		s.notify("Please login to add items to cart", toast.Error)
		return ErrNotAuthenticated
	}
	if s.user.Role != models.RoleCustomer {
		s.notify("Only customers can order food", toast.Error)
		return ErrNotCustomer
	}
	item, ok := s.catalog.MenuItemByID(menuItemID)
	if !ok {
		return ErrUnknownItem
	}

	found := false
	for i := range s.cart {
		if s.cart[i].MenuItem.ID == menuItemID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, models.CartLine{MenuItem: item, Quantity: 1})
	}

	s.persistJSON(storage.KeyCart, s.cart)
	s.notify(item.Name+" added to cart", toast.Success)
	return nil
}

// UpdateQuantity sets a line's quantity exactly. Zero or negative
// removes the line; the cart never holds a line with quantity <= 0.
// Unknown item IDs are a no-op.
func (s *Store) UpdateQuantity(menuItemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		kept := s.cart[:0]
		removed := false
		for _, line := range s.cart {
			if line.MenuItem.ID == menuItemID {
				removed = true
				continue
			}
			kept = append(kept, line)
		}
		s.cart = kept
		if removed {
			s.notify("Item removed from cart", toast.Success)
		}
	} else {
		for i := range s.cart {
			if s.cart[i].MenuItem.ID == menuItemID {
				s.cart[i].Quantity = quantity
				break
			}
		}
	}

	s.persistJSON(storage.KeyCart, s.cart)
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// Subtotal is the sum of price x quantity over all lines.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Store) subtotalLocked() float64 {
	var sum float64
	for _, line := range s.cart {
		sum += line.MenuItem.Price * float64(line.Quantity)
	}
	return sum
}

// Total is the subtotal plus the flat delivery fee.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked() + DeliveryFee
}

// SelectRestaurant records the restaurant the session is ordering
// from. Checkout requires one to be selected.
func (s *Store) SelectRestaurant(restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.catalog.RestaurantByID(restaurantID); !ok {
		return ErrUnknownRestaurant
	}
	s.selectedRestaurant = restaurantID
	return nil
}

// SelectedRestaurant returns the currently selected restaurant.
func (s *Store) SelectedRestaurant() (models.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedRestaurant == "" {
		return models.Restaurant{}, false
	}
	return s.catalog.RestaurantByID(s.selectedRestaurant)
}
