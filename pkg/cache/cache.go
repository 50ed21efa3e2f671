// Package cache provides byte caches and key generation for rendered
// artifacts.
//
// Two real backends are provided: FileCache for single-machine CLI use and
// RedisCache for sharing artifacts between processes. NullCache disables
// caching without changing call sites. Keys are generated through the Keyer
// interface so the pipeline never assembles key strings itself.
package cache

import (
	"context"
	"time"
)

// Entry lifetimes. Keys are content-addressed, so expiry exists to bound
// store growth rather than to guard against staleness.
const (
	// TTLDocument is how long built document markup stays cached.
	TTLDocument = 24 * time.Hour

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented cache with per-entry TTL.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero or less stores without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DocumentKey generates a key for built document markup, derived from
	// the scene manifest hash.
	DocumentKey(sceneHash string) string

	// ArtifactKey generates a key for a rendered artifact, derived from the
	// scene manifest hash and the options that affect the output bytes.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts captures the render options that change artifact bytes.
// Two renders with equal scene hashes and equal opts are interchangeable.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// DefaultKeyer generates globally shared keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DocumentKey generates a key for built document markup.
func (k *DefaultKeyer) DocumentKey(sceneHash string) string {
	return hashKey("doc", sceneHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
