package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub/catalog"
	"foodhub/models"
)

// seedReviews logs in, places an order with the given items, delivers
// it, and submits one review per rating.
func seedReviews(t *testing.T, s *Store, itemID string, ratings []int) {
	t.Helper()
	loginCustomer(t, s)
	item, ok := catalog.New().MenuItemByID(itemID)
	require.True(t, ok)
	require.NoError(t, s.SelectRestaurant(item.RestaurantID))
	require.NoError(t, s.AddToCart(itemID))
	order, err := s.PlaceOrder(OrderInput{Address: "123 Main Street", Phone: "1234567890", Total: s.Total()})
	require.NoError(t, err)
	require.NoError(t, s.SetOrderStatus(order.ID, "delivered"))
	for _, rating := range ratings {
		_, err := s.SubmitReview(ReviewInput{OrderID: order.ID, MenuItemID: itemID, Rating: rating})
		require.NoError(t, err)
	}
}

func TestRatingForNoReviews(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.Equal(t, models.Rating{}, s.RatingFor("m1", ScopeMenuItem))
	assert.Equal(t, models.Rating{}, s.RatingFor("1", ScopeRestaurant))
}

func TestRatingForArithmeticMean(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedReviews(t, s, "m1", []int{5, 3, 4})

	got := s.RatingFor("m1", ScopeMenuItem)
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 4.0, got.Average, 0.001)

	// The restaurant-scoped aggregate sees the same reviews through
	// the other foreign key.
	got = s.RatingFor("1", ScopeRestaurant)
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 4.0, got.Average, 0.001)

	// Other entities are untouched.
	assert.Equal(t, models.Rating{}, s.RatingFor("m2", ScopeMenuItem))
}

func TestStarDistribution(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedReviews(t, s, "m1", []int{5, 5, 4})

	buckets := s.StarDistribution("m1")
	require.Len(t, buckets, 5)

	assert.Equal(t, models.StarBucket{Star: 5, Count: 2, Percentage: 67}, buckets[0])
	assert.Equal(t, models.StarBucket{Star: 4, Count: 1, Percentage: 33}, buckets[1])
	for _, b := range buckets[2:] {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percentage)
	}
}

func TestStarDistributionEmpty(t *testing.T) {
	s, _, _ := newTestStore(t)
	for _, b := range s.StarDistribution("m1") {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percentage)
	}
}

func TestSubmitReviewRecordsEntryAndUpdatesAggregate(t *testing.T) {
	s, rec, _ := newTestStore(t)
	loginCustomer(t, s)
	require.NoError(t, s.SelectRestaurant("1"))
	require.NoError(t, s.AddToCart("m1"))
	order, err := s.PlaceOrder(OrderInput{Address: "123 Main Street", Phone: "1234567890", Total: s.Total()})
	require.NoError(t, err)
	require.NoError(t, s.SetOrderStatus(order.ID, "delivered"))

	review, err := s.SubmitReview(ReviewInput{OrderID: order.ID, MenuItemID: "m1", Rating: 4})
	require.NoError(t, err)

	assert.Equal(t, 4, review.Rating)
	assert.Empty(t, review.Comment)
	assert.Equal(t, "Margherita Pizza", review.MenuItemName)
	assert.Equal(t, "Italian Bistro", review.RestaurantName)
	assert.Equal(t, order.Total, review.OrderTotal)
	assert.Equal(t, "review_fixed-id", review.ID)

	got := s.RatingFor("m1", ScopeMenuItem)
	assert.Equal(t, 1, got.Count)
	assert.InDelta(t, 4.0, got.Average, 0.001)

	msg, _ := rec.last()
	assert.Equal(t, "Review submitted successfully!", msg)
}

func TestSubmitReviewRefusals(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.SubmitReview(ReviewInput{OrderID: "x", MenuItemID: "m1", Rating: 4})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	loginCustomer(t, s)
	require.NoError(t, s.SelectRestaurant("1"))
	require.NoError(t, s.AddToCart("m1"))
	order, err := s.PlaceOrder(OrderInput{Address: "123 Main Street", Phone: "1234567890", Total: s.Total()})
	require.NoError(t, err)

	_, err = s.SubmitReview(ReviewInput{OrderID: order.ID, MenuItemID: "m1", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = s.SubmitReview(ReviewInput{OrderID: "ORDMISSING", MenuItemID: "m1", Rating: 4})
	assert.ErrorIs(t, err, ErrUnknownOrder)

	// Not yet delivered.
	_, err = s.SubmitReview(ReviewInput{OrderID: order.ID, MenuItemID: "m1", Rating: 4})
	assert.ErrorIs(t, err, ErrOrderNotDelivered)

	require.NoError(t, s.SetOrderStatus(order.ID, "delivered"))

	// Item not part of the order.
	_, err = s.SubmitReview(ReviewInput{OrderID: order.ID, MenuItemID: "m2", Rating: 4})
	assert.ErrorIs(t, err, ErrItemNotInOrder)

	// Someone else's order.
	_, err = s.Login(Credentials{Email: "mallory@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = s.SubmitReview(ReviewInput{OrderID: order.ID, MenuItemID: "m1", Rating: 4})
	assert.ErrorIs(t, err, ErrNotOrderOwner)
}

func TestReviewFeedFiltersAndCaps(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedReviews(t, s, "m1", []int{5, 4, 3, 2, 1, 5, 4, 3, 2, 1})

	feed := s.ReviewFeed(8)
	assert.Len(t, feed, 8)
	// Newest first: the last submitted rating was 1.
	assert.Equal(t, 1, feed[0].Rating)

	// A review whose order is missing from the ledger is filtered out.
	orphan := models.Review{ID: "review_orphan", OrderID: "ORDMISSING", MenuItemID: "m1", Rating: 5}
	s.mu.Lock()
	s.reviews = append(s.reviews, orphan)
	s.mu.Unlock()
	feed = s.ReviewFeed(8)
	for _, r := range feed {
		assert.NotEqual(t, "review_orphan", r.ID)
	}
}

func TestReviewsForMenuItemNewestFirst(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedReviews(t, s, "m1", []int{3, 5})
	reviews := s.ReviewsForMenuItem("m1")
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, 3, reviews[1].Rating)
}
