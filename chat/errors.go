package chat

import "errors"

var (
	// ErrRetrieval marks a turn that failed while fetching context documents.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrCompletion marks a turn that failed while generating the answer.
	ErrCompletion = errors.New("completion failed")

	// ErrSessionRequired is returned when a session is not provided.
	ErrSessionRequired = errors.New("session required")

	// ErrRetrieverRequired is returned when a retriever is not provided.
	ErrRetrieverRequired = errors.New("retriever required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyQuestion is returned when the question text is empty.
	ErrEmptyQuestion = errors.New("question is empty")
)
