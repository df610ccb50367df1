package statemachine

import (
	"errors"

	"foodhub/models"
)

// allStatuses is the authoritative status set.
var allStatuses = []models.OrderStatus{
	models.StatusPreparing,
	models.StatusOnTheWay,
	models.StatusDelivered,
}

// forwardFlow is the nominal customer-visible progression. Admin
// overrides are not bound by it; see AdminTransition.
var forwardFlow = map[models.OrderStatus]models.OrderStatus{
	models.StatusPreparing: models.StatusOnTheWay,
	models.StatusOnTheWay:  models.StatusDelivered,
}

// Parse validates a raw status string against the known status set.
func Parse(raw string) (models.OrderStatus, error) {
	s := models.OrderStatus(raw)
	for _, known := range allStatuses {
		if s == known {
			return s, nil
		}
	}
	return "", errors.New("unknown order status '" + raw + "'. Valid statuses are: " + describeAll())
}

// AdminTransition checks an admin-driven status change. Admins may move
// an order between any two known statuses, including backwards — the
// dashboard is the only transition authority and it is trusted to fix
// mistakes, so the only rejected input is an unknown status.
func AdminTransition(from, to models.OrderStatus) error {
	if _, err := Parse(string(to)); err != nil {
		return err
	}
	return nil
}

// NextStatuses returns the nominal forward continuation of a status, or
// nil for the terminal delivered state.
func NextStatuses(status models.OrderStatus) []models.OrderStatus {
	if next, ok := forwardFlow[status]; ok {
		return []models.OrderStatus{next}
	}
	return nil
}

// ForwardPath returns the full nominal lifecycle in order, for the
// public statuses endpoint.
func ForwardPath() []models.OrderStatus {
	out := make([]models.OrderStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// IsTerminal reports whether no forward transition leaves the status.
func IsTerminal(status models.OrderStatus) bool {
	_, ok := forwardFlow[status]
	return !ok
}

func describeAll() string {
	result := ""
	for i, s := range allStatuses {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
