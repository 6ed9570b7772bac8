package port

import "context"

// KV is the durable key-value store behind the state manager. Values are
// opaque strings; serialization belongs to the caller, not the adapter.
type KV interface {
	// Get returns the value stored under key, with ok=false when the key
	// is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set durably stores value under key, replacing any previous value.
	// A failed Set leaves the caller's in-memory state authoritative; it
	// is reported, never rolled back.
	Set(ctx context.Context, key, value string) error
}
