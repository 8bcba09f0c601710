package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/warebot/ai"
	"github.com/poiesic/warebot/core"
	"github.com/poiesic/warebot/storage"
)

// DefaultMaxHits is the fixed number of documents retrieved per query.
const DefaultMaxHits = 10

// Retriever embeds query text and finds the most similar stored documents.
// The hit count is fixed at construction; every query retrieves up to the
// same number of documents regardless of question complexity.
type Retriever struct {
	documents storage.DocumentRepository
	embedder  ai.Embedder
	maxHits   int
	logger    *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithMaxHits sets the number of documents retrieved per query.
// Default is DefaultMaxHits.
func WithMaxHits(n int) Option {
	return func(r *Retriever) error {
		if n < 1 {
			return fmt.Errorf("max hits must be positive, got %d", n)
		}
		r.maxHits = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a retriever over the given repository and provider.
func NewRetriever(documents storage.DocumentRepository, provider ai.AIProvider, opts ...Option) (*Retriever, error) {
	if documents == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Retriever{
		documents: documents,
		embedder:  provider.Embedder(),
		maxHits:   DefaultMaxHits,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve embeds the query and returns up to the configured number of
// documents in descending similarity order. An empty index yields an empty
// slice, not an error; the caller decides what an empty context means.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]*core.Document, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}

	results, err := r.documents.FindSimilar(ctx, vector, r.maxHits)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	docs := make([]*core.Document, len(results))
	for i, result := range results {
		docs[i] = result.Document
	}

	r.logger.Debug("retrieved documents", "hits", len(docs), "max", r.maxHits)
	return docs, nil
}

// MaxHits returns the configured per-query hit limit.
func (r *Retriever) MaxHits() int {
	return r.maxHits
}
