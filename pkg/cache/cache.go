// Package cache stores rendered artifacts keyed by their inputs, so
// regenerating an identical cloud is a file read instead of a layout
// run. Backends: file (CLI default), redis (server deployments), and
// null (caching disabled).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// ArtifactKey derives a cache key for a rendered artifact from
// everything that influences the output bytes: the token list (order
// matters before shuffling only through the seed, so it is included
// as-is), the layout settings, the render options, and the seed.
func ArtifactKey(tokens []string, settings any, format string, seed uint64) string {
	data, _ := json.Marshal(struct {
		Tokens   []string `json:"tokens"`
		Settings any      `json:"settings"`
		Format   string   `json:"format"`
		Seed     uint64   `json:"seed"`
	}{tokens, settings, format, seed})
	return fmt.Sprintf("artifact:%s", Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
