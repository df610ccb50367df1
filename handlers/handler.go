package handlers

import (
	"errors"
	"net/http"

	"foodhub/catalog"
	"foodhub/store"
	"foodhub/toast"
)

// Handler carries the injected collaborators for every route. There is
// no package-level state; tests build a Handler around a throwaway
// store.
type Handler struct {
	Store   *store.Store
	Catalog *catalog.Catalog
	Toasts  *toast.Center
}

func New(s *store.Store, cat *catalog.Catalog, toasts *toast.Center) *Handler {
	return &Handler{Store: s, Catalog: cat, Toasts: toasts}
}

// statusFor maps store refusals to HTTP codes. Every failure in the
// system is "precondition not met, refuse and notify", so this table
// is the whole error taxonomy.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNotCustomer),
		errors.Is(err, store.ErrNotOrderOwner):
		return http.StatusForbidden
	case errors.Is(err, store.ErrUnknownItem),
		errors.Is(err, store.ErrUnknownRestaurant),
		errors.Is(err, store.ErrUnknownOrder):
		return http.StatusNotFound
	case errors.Is(err, store.ErrOrderNotDelivered),
		errors.Is(err, store.ErrItemNotInOrder),
		errors.Is(err, store.ErrInvalidRating):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
