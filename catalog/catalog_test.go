package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedShape(t *testing.T) {
	c := New()
	assert.Len(t, c.Restaurants(), 6)

	item, ok := c.MenuItemByID("m1")
	require.True(t, ok)
	assert.Equal(t, "Margherita Pizza", item.Name)
	assert.InDelta(t, 12.99, item.Price, 0.001)
	assert.Equal(t, "1", item.RestaurantID)

	// Every menu item belongs to a seeded restaurant.
	for _, r := range c.Restaurants() {
		for _, m := range c.MenuByRestaurant(r.ID, "") {
			assert.Equal(t, r.ID, m.RestaurantID)
		}
	}
}

func TestMenuByRestaurantCategoryFilter(t *testing.T) {
	c := New()

	all := c.MenuByRestaurant("1", "")
	assert.Len(t, all, 4)

	pizza := c.MenuByRestaurant("1", "pizza")
	require.Len(t, pizza, 1)
	assert.Equal(t, "m1", pizza[0].ID)

	assert.Empty(t, c.MenuByRestaurant("1", "sushi"))
	assert.Empty(t, c.MenuByRestaurant("nope", ""))
}

func TestRestaurantsReturnsCopy(t *testing.T) {
	c := New()
	got := c.Restaurants()
	got[0].Name = "mutated"

	again := c.Restaurants()
	assert.Equal(t, "Italian Bistro", again[0].Name)
}

func TestLookupMiss(t *testing.T) {
	c := New()
	_, ok := c.RestaurantByID("99")
	assert.False(t, ok)
	_, ok = c.MenuItemByID("m999")
	assert.False(t, ok)
}
