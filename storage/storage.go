// Package storage is the persistence bridge: a string key/value store
// mirroring the session, cart, order ledger, review ledger, and theme
// preference. Values are opaque to this package; the store serializes
// JSON into them. On startup the bridge is the source of truth.
package storage

// Keys for the persisted state blobs. The first four hold JSON; the
// theme key holds a bare "dark" or "light" string.
const (
	KeyUser    = "foodhub-user"
	KeyCart    = "foodhub-cart"
	KeyOrders  = "foodhub-orders"
	KeyReviews = "foodhub-reviews"
	KeyTheme   = "foodhub-theme"
)

// Bridge is an opaque key/value store. Get reports presence separately
// from errors so an absent key is not a failure.
type Bridge interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
