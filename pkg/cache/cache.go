// Package cache stores derived data that is expensive to recompute, such as
// the parsed output of "convert -list font" and rendered template previews.
//
// The CLI uses a [FileCache] under $XDG_CACHE_HOME/matte; tests and
// --no-cache runs use [NullCache]. Keys are built by a [Keyer] so every
// consumer agrees on their shape.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// FontsKey identifies the font list reported by a convert binary.
	FontsKey(binary string) string

	// PreviewKey identifies a rendered template diagram.
	PreviewKey(template string, opts PreviewKeyOpts) string
}

// PreviewKeyOpts are the render options that change a preview's bytes.
type PreviewKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FontsKey returns "fonts:<hash>" for the given binary path.
func (DefaultKeyer) FontsKey(binary string) string {
	return hashKey("fonts", binary)
}

// PreviewKey returns "preview:<hash>" over the template identity and options.
func (DefaultKeyer) PreviewKey(template string, opts PreviewKeyOpts) string {
	return hashKey("preview", template, opts)
}

// KeyType returns the prefix of a key built by a Keyer ("fonts", "preview").
func KeyType(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}
