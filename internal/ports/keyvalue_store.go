package ports

import "context"

// Port: string-keyed persistence for user preferences and session data.
// Values are serialized structured data; readers must tolerate absent or
// corrupt values by falling back to a documented default.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores the value, replacing any existing one.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
