package store

import (
	"math"

	"foodhub/models"
	"foodhub/storage"
	"foodhub/toast"
)

// RatingScope selects which foreign key RatingFor filters on.
type RatingScope int

const (
	ScopeRestaurant RatingScope = iota
	ScopeMenuItem
)

// ReviewInput references one line item of one of the submitter's
// delivered orders. Everything else on the review (names, restaurant,
// order total) is derived from the ledger, not trusted from the caller.
type ReviewInput struct {
	OrderID    string
	MenuItemID string
	Rating     int
	Comment    string
}

// SubmitReview appends a review to the ledger. Beyond requiring a
// session and a 1-5 rating, it checks that the order exists, belongs
// to the submitter, is delivered, and actually contains the item.
// Those last three checks are stronger than the UI-only gating the
// product shipped with; a non-browser client gets the same rules.
func (s *Store) SubmitReview(input ReviewInput) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		s.notify("Please login to submit a review", toast.Error)
		return nil, ErrNotAuthenticated
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	var order *models.Order
	for i := range s.orders {
		if s.orders[i].ID == input.OrderID {
			order = &s.orders[i]
			break
		}
	}
	if order == nil {
		return nil, ErrUnknownOrder
	}
	if order.UserID != s.user.ID {
		return nil, ErrNotOrderOwner
	}
	if order.Status != models.StatusDelivered {
		return nil, ErrOrderNotDelivered
	}

	var item *models.MenuItem
	for i := range order.Items {
		if order.Items[i].MenuItem.ID == input.MenuItemID {
			item = &order.Items[i].MenuItem
			break
		}
	}
	if item == nil {
		return nil, ErrItemNotInOrder
	}

	review := models.Review{
		ID:             "review_" + s.newID(),
		UserID:         s.user.ID,
		UserName:       s.user.Name,
		MenuItemID:     item.ID,
		MenuItemName:   item.Name,
		RestaurantID:   order.RestaurantID,
		RestaurantName: order.RestaurantName,
		OrderID:        order.ID,
		OrderTotal:     order.Total,
		Rating:         input.Rating,
		Comment:        input.Comment,
		CreatedAt:      s.now(),
	}
	s.reviews = append(s.reviews, review)
	s.persistJSON(storage.KeyReviews, s.reviews)
	s.notify("Review submitted successfully!", toast.Success)

	out := review
	return &out, nil
}

// RatingFor aggregates the reviews matching one restaurant or menu
// item. Recomputed on every call; the ledger is small and in memory.
func (s *Store) RatingFor(entityID string, scope RatingScope) models.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum, count int
	for _, r := range s.reviews {
		if !matches(r, entityID, scope) {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return models.Rating{}
	}
	return models.Rating{Average: float64(sum) / float64(count), Count: count}
}

// StarDistribution breaks one menu item's reviews down by star value,
// 5 down to 1, with each bucket's share as an integer percentage.
func (s *Store) StarDistribution(menuItemID string) []models.StarBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[int]int)
	total := 0
	for _, r := range s.reviews {
		if r.MenuItemID == menuItemID {
			counts[r.Rating]++
			total++
		}
	}

	buckets := make([]models.StarBucket, 0, 5)
	for star := 5; star >= 1; star-- {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(counts[star]) / float64(total) * 100))
		}
		buckets = append(buckets, models.StarBucket{Star: star, Count: counts[star], Percentage: pct})
	}
	return buckets
}

// ReviewsForMenuItem returns one item's reviews, newest first.
func (s *Store) ReviewsForMenuItem(menuItemID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Review
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].MenuItemID == menuItemID {
			out = append(out, s.reviews[i])
		}
	}
	return out
}

// ReviewFeed returns the newest reviews whose order still exists in
// the ledger, capped at limit. The admin dashboard shows this feed.
func (s *Store) ReviewFeed(limit int) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderIDs := make(map[string]bool, len(s.orders))
	for _, o := range s.orders {
		orderIDs[o.ID] = true
	}

	var out []models.Review
	for i := len(s.reviews) - 1; i >= 0 && len(out) < limit; i-- {
		if orderIDs[s.reviews[i].OrderID] {
			out = append(out, s.reviews[i])
		}
	}
	return out
}

func matches(r models.Review, entityID string, scope RatingScope) bool {
	switch scope {
	case ScopeRestaurant:
		return r.RestaurantID == entityID
	case ScopeMenuItem:
		return r.MenuItemID == entityID
	}
	return false
}
