package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use and deterministic
// for identical input.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer generates a free-text answer from an assembled prompt.
// Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete sends the prompt to the completion service and returns the
	// generated text. Returns an error if the service is unreachable or
	// produces no output; the error aborts only the current turn.
	Complete(ctx context.Context, prompt string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// Completer instances, ensuring they share configuration.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Completer returns the text completion service.
	Completer() Completer

	// Close releases resources held by the provider and its services.
	Close() error
}
