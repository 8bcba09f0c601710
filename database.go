// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package warebot

import (
	"context"
	"log/slog"

	"github.com/poiesic/warebot/ai"
	"github.com/poiesic/warebot/ai/openai"
	"github.com/poiesic/warebot/chat"
	"github.com/poiesic/warebot/core"
	"github.com/poiesic/warebot/ingestion"
	"github.com/poiesic/warebot/search"
	"github.com/poiesic/warebot/storage"
	"github.com/poiesic/warebot/storage/badger"
)

// Database wires the persistent document index and the AI provider together
// and hands out the ingestion, retrieval, and chat components built on them.
// All dependencies are constructed here and passed down explicitly.
type Database struct {
	backend   *badger.Backend
	documents storage.DocumentRepository
	provider  ai.AIProvider
	logger    *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the AI service configuration used to build the provider.
func WithAIConfig(cfg *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = cfg
	}
}

// WithAIProvider supplies a pre-built AI provider instead of constructing one
// from configuration. Intended for tests and embedders of the library.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// NewDatabase opens the document index at filePath and builds the AI provider.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	documents, backend, err := badger.NewDocumentRepository(filePath)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:   backend,
		documents: documents,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}
	if err := db.documents.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) Documents() storage.DocumentRepository {
	return db.documents
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.documents, db.provider, opts...)
}

func (db *Database) NewRetriever(opts ...search.Option) (*search.Retriever, error) {
	return search.NewRetriever(db.documents, db.provider, opts...)
}

func (db *Database) NewAssistant(opts ...chat.Option) (*chat.Assistant, error) {
	retriever, err := db.NewRetriever()
	if err != nil {
		return nil, err
	}
	return chat.NewAssistant(retriever, db.provider, opts...)
}

// Ingest runs a one-shot ingestion of the tabular source into the index.
func (db *Database) Ingest(ctx context.Context, sourcePath string) error {
	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()
	return pipeline.Ingest(ctx, sourcePath)
}

// Answer runs a single conversation turn in the given mode.
func (db *Database) Answer(ctx context.Context, session *chat.Session, question string, mode core.Mode) (string, error) {
	assistant, err := db.NewAssistant(chat.WithMode(mode))
	if err != nil {
		return "", err
	}
	return assistant.Ask(ctx, session, question)
}
