package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/warebot/ai"
	"github.com/poiesic/warebot/core"
	"github.com/poiesic/warebot/storage"
)

const defaultEmbedBatchSize = 32

// Pipeline ingests a tabular inventory source into the document repository.
// Ingestion is idempotent per collection lifetime: a non-empty repository is
// never written to again, and a batch is committed whole or not at all.
type Pipeline struct {
	documents storage.DocumentRepository
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithEmbedBatchSize sets how many row texts are embedded per service call.
// Default is 32.
func WithEmbedBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(documents storage.DocumentRepository, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		embedder:  provider.Embedder(),
		pool:      pool,
		batchSize: defaultEmbedBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest loads the tabular source at sourcePath and inserts one document per
// row, in source order, ids assigned from row position. If the repository
// already holds documents the whole run is skipped: ingestion is
// all-or-nothing per collection lifetime, never partial or incremental.
//
// A missing source fails with ErrSourceNotFound and an undecodable one with
// ErrParse, both before any state is touched. Row-level formatting issues are
// absorbed into placeholder text and never abort the batch.
func (p *Pipeline) Ingest(ctx context.Context, sourcePath string) error {
	rows, err := LoadSource(sourcePath)
	if err != nil {
		return err
	}
	p.logger.Info("loaded inventory source", "source", sourcePath, "rows", len(rows))

	// Format every row up front; the texts also feed the dataset fingerprint.
	docs := make([]*core.Document, len(rows))
	texts := make([]string, len(rows))
	for i, row := range rows {
		text, metadata := FormatRow(row)
		docs[i] = &core.Document{
			ID:       strconv.Itoa(row.Index),
			Text:     text,
			Metadata: metadata,
		}
		texts[i] = text
	}
	fp := core.FingerprintFromContent(strings.Join(texts, "\n"))

	count, err := p.documents.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		stored, fpErr := p.documents.Fingerprint(ctx)
		if fpErr != nil {
			p.logger.Warn("could not read stored dataset fingerprint", "err", fpErr)
		} else if stored != 0 && stored != fp {
			// Positional ids mean a changed source cannot be reconciled with
			// the stored collection; surface it, don't fix it.
			p.logger.Warn("source content differs from ingested dataset; index may be stale",
				"source", sourcePath, "stored", uint64(stored), "current", uint64(fp))
		}
		p.logger.Info("repository already populated, skipping ingestion", "documents", count)
		return nil
	}

	if len(docs) == 0 {
		p.logger.Info("source has no data rows, nothing to ingest", "source", sourcePath)
		return nil
	}

	if err := p.embedAll(ctx, docs, texts); err != nil {
		return err
	}

	if err := p.documents.AddDocuments(ctx, docs...); err != nil {
		return err
	}
	if err := p.documents.SetFingerprint(ctx, fp); err != nil {
		return err
	}

	p.logger.Info("ingestion completed", "documents", len(docs))
	return nil
}

// embedAll generates embeddings for every document text, batched across the
// worker pool. Any embedding failure aborts the whole run before insertion,
// preserving the all-or-nothing batch guarantee.
func (p *Pipeline) embedAll(ctx context.Context, docs []*core.Document, texts []string) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(texts); start += p.batchSize {
		end := start + p.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		start, end := start, end

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			vectors, err := p.embedder.EmbedTexts(ctx, texts[start:end])
			if err != nil {
				setErr(err)
				return
			}
			if len(vectors) != end-start {
				setErr(fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), end-start))
				return
			}
			// Chunks write disjoint ranges, no lock needed
			for i, vector := range vectors {
				docs[start+i].Vector = vector
			}
		})
		if submitErr != nil {
			wg.Done()
			setErr(submitErr)
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return fmt.Errorf("embedding failed: %w", firstErr)
	}
	return nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
