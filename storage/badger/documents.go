package badger

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/warebot/core"
	"github.com/poiesic/warebot/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository opens a document repository at the given path.
// The storage location is a configuration parameter; state survives restarts.
//
// Returns the storage.DocumentRepository interface plus the backend so the
// caller controls backend lifecycle.
func NewDocumentRepository(filePath string) (storage.DocumentRepository, *Backend, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, nil, err
	}
	return &DocumentRepository{backend: backend}, backend, nil
}

// newDocumentRepository wraps an already-open backend.
func newDocumentRepository(backend *Backend) *DocumentRepository {
	return &DocumentRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *DocumentRepository) Close() error {
	return nil
}

// Count returns the number of documents currently stored.
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(documentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	return count, err
}

// AddDocuments appends documents in a single all-or-nothing transaction.
// A duplicate id, whether already stored or repeated within the batch,
// fails the whole batch with storage.ErrDuplicateID.
func (r *DocumentRepository) AddDocuments(ctx context.Context, docs ...*core.Document) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if len(docs) == 0 {
		return nil
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		seen := make(map[string]bool, len(docs))
		for _, doc := range docs {
			if err := core.ValidateDocument(doc); err != nil {
				return err
			}
			if seen[doc.ID] {
				return fmt.Errorf("%w: %s repeated in batch", storage.ErrDuplicateID, doc.ID)
			}
			seen[doc.ID] = true

			key := makeDocumentKey(doc.ID)
			_, err := tx.Get(key)
			if err == nil {
				return fmt.Errorf("%w: %s", storage.ErrDuplicateID, doc.ID)
			}
			if err != badger.ErrKeyNotFound {
				return err
			}

			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single document by id.
func (r *DocumentRepository) GetDocument(ctx context.Context, id string) (*core.Document, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var result *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocumentKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalDocument(val)
			return unmarshalErr
		})
	}, false)

	return result, err
}

// Documents returns all stored documents ordered by id ascending.
func (r *DocumentRepository) Documents(ctx context.Context) ([]*core.Document, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var docs []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.Document
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				doc, unmarshalErr = storage.UnmarshalDocument(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(docs, func(a, b *core.Document) int {
		return compareDocumentIDs(a.ID, b.ID)
	})
	return docs, nil
}

// FindSimilar returns up to limit documents ranked by descending cosine
// similarity to the query vector. Ties are broken by stored id ascending so
// results are deterministic. An empty store yields an empty result.
func (r *DocumentRepository) FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.SearchResult, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if limit <= 0 {
		return []*core.SearchResult{}, nil
	}

	results := []*core.SearchResult{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.Document
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				doc, unmarshalErr = storage.UnmarshalDocument(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}

			// Skip documents without embeddings
			if len(doc.Vector) == 0 {
				continue
			}

			results = append(results, &core.SearchResult{
				Document: doc,
				Score:    cosineSimilarity(vector, doc.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending, ties by stored id ascending
	slices.SortFunc(results, func(a, b *core.SearchResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return compareDocumentIDs(a.Document.ID, b.Document.ID)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Fingerprint returns the recorded dataset fingerprint, or zero if absent.
func (r *DocumentRepository) Fingerprint(ctx context.Context) (core.Fingerprint, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	var fp core.Fingerprint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFingerprintKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			fp, unmarshalErr = storage.UnmarshalFingerprint(val)
			return unmarshalErr
		})
	}, false)

	return fp, err
}

// SetFingerprint records the dataset fingerprint for the collection.
func (r *DocumentRepository) SetFingerprint(ctx context.Context, fp core.Fingerprint) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeFingerprintKey(), storage.MarshalFingerprint(fp)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// compareDocumentIDs orders ids numerically when both are decimal strings
// (the positional ids assigned at ingestion), falling back to lexicographic
// order otherwise.
func compareDocumentIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths compare over the shorter prefix; a zero vector scores 0.
func cosineSimilarity(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
