// Package store persists scene documents for the preview server.
//
// This package defines the Store interface for scene document storage,
// with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for durable multi-instance deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Production
//	st, err := store.NewMongoStore(ctx, store.MongoConfig{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Manage documents:
//
//	doc := store.NewDocument("logo", manifestBytes)
//	if err := st.Put(ctx, doc); err != nil {
//	    return err
//	}
//
//	doc, err := st.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // No such scene
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// Document is a stored scene manifest with its metadata. Scene holds the
// raw TOML source so renders always start from what the caller uploaded.
type Document struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Scene     []byte    `bson:"scene" json:"scene"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store is the interface for scene document storage backends. Backends
// store documents as given; timestamp management is the caller's job.
type Store interface {
	// Get retrieves a document by ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (*Document, error)

	// Put stores a document, overwriting any existing one with the same ID.
	Put(ctx context.Context, doc *Document) error

	// Delete removes a document. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id string) error

	// List returns documents sorted by most recently updated. A limit of
	// zero or less returns everything.
	List(ctx context.Context, limit int) ([]*Document, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewID creates a new document identifier.
func NewID() string {
	return uuid.NewString()
}

// NewDocument creates a document for a scene manifest with a fresh ID and
// timestamps.
func NewDocument(name string, scene []byte) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        NewID(),
		Name:      name,
		Scene:     scene,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
