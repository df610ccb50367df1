// Package catalog supplies the fixed set of restaurants and menu items.
// The data is seeded in code and read-only; there is no backing service.
package catalog

import "foodhub/models"

// Catalog is an immutable lookup over the seeded restaurants and menu
// items. All accessors return copies so callers cannot mutate the seed.
type Catalog struct {
	restaurants []models.Restaurant
	menuItems   []models.MenuItem
	byRestID    map[string]models.Restaurant
	byItemID    map[string]models.MenuItem
}

// New builds a catalog from the default seed data.
func New() *Catalog {
	return From(seedRestaurants, seedMenuItems)
}

// From builds a catalog from an explicit dataset. Tests use this to run
// against a tiny fixture instead of the full seed.
func From(restaurants []models.Restaurant, items []models.MenuItem) *Catalog {
	c := &Catalog{
		restaurants: restaurants,
		menuItems:   items,
		byRestID:    make(map[string]models.Restaurant, len(restaurants)),
		byItemID:    make(map[string]models.MenuItem, len(items)),
	}
	for _, r := range restaurants {
		c.byRestID[r.ID] = r
	}
	for _, m := range items {
		c.byItemID[m.ID] = m
	}
	return c
}

// Restaurants returns all restaurants in seed order.
func (c *Catalog) Restaurants() []models.Restaurant {
	out := make([]models.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

// RestaurantByID looks up a single restaurant.
func (c *Catalog) RestaurantByID(id string) (models.Restaurant, bool) {
	r, ok := c.byRestID[id]
	return r, ok
}

// MenuItemByID looks up a single menu item.
func (c *Catalog) MenuItemByID(id string) (models.MenuItem, bool) {
	m, ok := c.byItemID[id]
	return m, ok
}

// MenuByRestaurant returns the items of one restaurant, optionally
// filtered by category. An empty category means no filter.
func (c *Catalog) MenuByRestaurant(restaurantID, category string) []models.MenuItem {
	var out []models.MenuItem
	for _, m := range c.menuItems {
		if m.RestaurantID != restaurantID {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		out = append(out, m)
	}
	return out
}
