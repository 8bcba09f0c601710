package ingestion

import "errors"

var (
	// ErrSourceNotFound is returned when the tabular source is unreachable.
	ErrSourceNotFound = errors.New("source not found")

	// ErrParse is returned when the source cannot be decoded as tabular data.
	ErrParse = errors.New("source parse failed")

	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
