package storage

import (
	"context"

	"github.com/poiesic/warebot/core"
)

// DocumentRepository provides operations over the persistent semantic index.
// Implementations must be thread-safe for concurrent reads; writes are
// expected to be serialized before query traffic begins.
type DocumentRepository interface {
	// Count returns the number of documents currently stored.
	Count(ctx context.Context) (int, error)

	// AddDocuments appends documents with their ids in a single all-or-nothing
	// batch. Returns ErrDuplicateID if any id already exists in the store or
	// appears twice in the batch; in that case nothing is committed.
	AddDocuments(ctx context.Context, docs ...*core.Document) error

	// GetDocument retrieves a single document by id.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id string) (*core.Document, error)

	// Documents returns all stored documents ordered by id ascending.
	// Intended for operator inspection, not query traffic.
	Documents(ctx context.Context) ([]*core.Document, error)

	// FindSimilar returns up to limit stored documents ranked by descending
	// similarity to the query vector, ties broken by stored id ascending.
	// An empty store yields an empty result, not an error.
	FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.SearchResult, error)

	// Fingerprint returns the dataset fingerprint recorded at ingestion,
	// or zero if none has been recorded.
	Fingerprint(ctx context.Context) (core.Fingerprint, error)

	// SetFingerprint records the dataset fingerprint for the collection.
	SetFingerprint(ctx context.Context, fp core.Fingerprint) error

	// Close closes the storage backend and releases resources.
	Close() error
}
