// Package store owns all mutable application state: the current actor,
// the cart, the order ledger, the review ledger, and the theme
// preference. Handlers read and call into it; every mutation is
// synchronously mirrored through the persistence bridge, which is the
// source of truth the next time Load runs.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodhub/catalog"
	"foodhub/models"
	"foodhub/storage"
	"foodhub/toast"
)

// DeliveryFee is the flat fee added to every order. Not configurable
// per restaurant.
const DeliveryFee = 2.99

// DefaultAdminEmail is the reserved address that forces the admin role
// at login when no explicit role is chosen.
const DefaultAdminEmail = "admin@demo.com"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNotCustomer       = errors.New("only customers can order food")
	ErrUnknownItem       = errors.New("menu item not found")
	ErrUnknownRestaurant = errors.New("restaurant not found")
	ErrNoRestaurant      = errors.New("no restaurant selected")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnknownOrder      = errors.New("order not found")
	ErrNotOrderOwner     = errors.New("order does not belong to this user")
	ErrOrderNotDelivered = errors.New("order has not been delivered")
	ErrItemNotInOrder    = errors.New("menu item is not part of this order")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidTheme      = errors.New("theme must be \"dark\" or \"light\"")
)

// Notifier receives user-facing notifications emitted by store
// operations. toast.Center satisfies it.
type Notifier interface {
	Notify(message string, level toast.Level)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, toast.Level) {}

// Store is the single application-state container. A mutex guards it
// because gin serves requests concurrently, even though each operation
// is atomic and synchronous from the caller's perspective.
type Store struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	bridge   storage.Bridge
	notifier Notifier
	now      func() time.Time
	newID    func() string

	adminEmail string

	user               *models.Actor
	cart               []models.CartLine
	selectedRestaurant string
	orders             []models.Order
	reviews            []models.Review
	theme              string
	ready              bool
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithClock replaces the wall clock. Tests use a fixed clock so order
// IDs and timestamps are deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the review ID source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithAdminEmail overrides the reserved admin address.
func WithAdminEmail(email string) Option {
	return func(s *Store) { s.adminEmail = email }
}

// New builds a store around its collaborators. The notifier may be nil.
func New(cat *catalog.Catalog, bridge storage.Bridge, notifier Notifier, opts ...Option) *Store {
	s := &Store{
		catalog:    cat,
		bridge:     bridge,
		notifier:   notifier,
		now:        time.Now,
		newID:      uuid.NewString,
		adminEmail: DefaultAdminEmail,
		theme:      "light",
	}
	if s.notifier == nil {
		s.notifier = noopNotifier{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load rehydrates state from the bridge. A missing or unreadable key
// leaves that slice/actor at its zero value; the theme defaults to
// light. Must be called once before the store serves requests — the
// ready flag gates role redirects so a request racing startup never
// sees a half-loaded session.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok, err := s.bridge.Get(storage.KeyUser); err != nil {
		return err
	} else if ok {
		var actor models.Actor
		if json.Unmarshal([]byte(raw), &actor) == nil {
			s.user = &actor
		}
	}
	if raw, ok, err := s.bridge.Get(storage.KeyCart); err != nil {
		return err
	} else if ok {
		var cart []models.CartLine
		if json.Unmarshal([]byte(raw), &cart) == nil {
			s.cart = cart
		}
	}
	if raw, ok, err := s.bridge.Get(storage.KeyOrders); err != nil {
		return err
	} else if ok {
		var orders []models.Order
		if json.Unmarshal([]byte(raw), &orders) == nil {
			s.orders = orders
		}
	}
	if raw, ok, err := s.bridge.Get(storage.KeyReviews); err != nil {
		return err
	} else if ok {
		var reviews []models.Review
		if json.Unmarshal([]byte(raw), &reviews) == nil {
			s.reviews = reviews
		}
	}
	if raw, ok, err := s.bridge.Get(storage.KeyTheme); err != nil {
		return err
	} else if ok && (raw == "dark" || raw == "light") {
		s.theme = raw
	}

	s.ready = true
	return nil
}

// Ready reports whether Load has completed.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Theme returns the persisted theme preference.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme stores the theme preference as a bare string, outside the
// JSON blobs.
func (s *Store) SetTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return ErrInvalidTheme
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.persistRaw(storage.KeyTheme, theme)
	return nil
}

// persistJSON mirrors v under key. In-memory state stays authoritative
// for the life of the process; a failed write is overwritten by the
// next mutation of the same key, so the error is dropped here rather
// than unwinding an already-applied mutation.
func (s *Store) persistJSON(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.bridge.Set(key, string(b))
}

func (s *Store) persistRaw(key, value string) {
	_ = s.bridge.Set(key, value)
}

func (s *Store) notify(message string, level toast.Level) {
	s.notifier.Notify(message, level)
}
