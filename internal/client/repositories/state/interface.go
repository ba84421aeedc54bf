// Package state persists the small amount of client-side state that must
// survive restarts: the auth token and the pending-search slot.
package state

import "context"

// Well-known keys. The token is durable; the pending search is transient
// and deleted as soon as it is consumed.
const (
	KeyAuthToken     = "auth_token"
	KeyPendingSearch = "pending_search"
)

// Repository is a string key-value store. Get of an absent key returns
// ("", nil).
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
