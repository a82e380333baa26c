// Copyright 2025 The ragmill Authors
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


package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/souravobl/ragmill/ai"
	"github.com/souravobl/ragmill/chunker"
	"github.com/souravobl/ragmill/core"
	"github.com/souravobl/ragmill/extract"
	"github.com/souravobl/ragmill/storage"
)

const (
	// DefaultPoolSize is the worker pool size for parallel extraction.
	DefaultPoolSize = 4
	// DefaultEmbedBatchSize is the number of chunk texts sent to the
	// embedding service per request.
	DefaultEmbedBatchSize = 32

	upsertMaxAttempts   = 2
	upsertRetryBaseWait = 500 * time.Millisecond
)

// Pipeline ingests a directory of PDF documents: extract page text, split
// each document into Q&A and summary chunks, embed the chunk texts, and
// upsert the results into the vector store.
//
// Extraction can fan out across a worker pool; chunking, embedding and
// persistence run per document in a fixed order so results are
// deterministic. A document that fails is recorded and skipped; the run
// only aborts on conditions that would corrupt the store, such as an
// embedding dimension change mid-run.
type Pipeline struct {
	extractor extract.Extractor
	chunker   *chunker.Chunker
	embedder  ai.Embedder
	store     storage.ChunkStore
	logger    *slog.Logger

	parallel       bool
	poolSize       int
	skipEmbed      bool
	saveDir        string
	embedBatchSize int
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		p.logger = logger
		return nil
	}
}

// WithParallel enables concurrent page extraction across documents.
func WithParallel(parallel bool) Option {
	return func(p *Pipeline) error {
		p.parallel = parallel
		return nil
	}
}

// WithPoolSize sets the extraction worker pool size.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("pool size must be positive, got %d", size)
		}
		p.poolSize = size
		return nil
	}
}

// WithSkipEmbed disables embedding and persistence. Chunks are still
// produced (and saved, if a save directory is set), which is useful for
// inspecting chunk boundaries without an embedding service.
func WithSkipEmbed(skip bool) Option {
	return func(p *Pipeline) error {
		p.skipEmbed = skip
		return nil
	}
}

// WithSaveDir writes each document's chunks as JSON files into dir.
func WithSaveDir(dir string) Option {
	return func(p *Pipeline) error {
		p.saveDir = dir
		return nil
	}
}

// WithEmbedBatchSize sets how many chunk texts are embedded per request.
func WithEmbedBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("embed batch size must be positive, got %d", size)
		}
		p.embedBatchSize = size
		return nil
	}
}

// NewPipeline creates an ingestion pipeline. The embedder and store may
// be nil only when embedding is skipped via WithSkipEmbed.
func NewPipeline(extractor extract.Extractor, chk *chunker.Chunker, embedder ai.Embedder, store storage.ChunkStore, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		extractor:      extractor,
		chunker:        chk,
		embedder:       embedder,
		store:          store,
		logger:         slog.Default(),
		poolSize:       DefaultPoolSize,
		embedBatchSize: DefaultEmbedBatchSize,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.extractor == nil {
		return nil, ErrExtractorRequired
	}
	if p.chunker == nil {
		return nil, ErrChunkerRequired
	}
	if !p.skipEmbed {
		if p.embedder == nil {
			return nil, ErrEmbedderRequired
		}
		if p.store == nil {
			return nil, ErrStoreRequired
		}
	}

	return p, nil
}

type extractResult struct {
	docId string
	pages []string
	err   error
}

// Run ingests every PDF in pdfDir and returns a summary of the run.
// A non-nil error means the run was aborted; the summary still reflects
// everything completed before the abort, and entries already persisted
// remain in the store.
func (p *Pipeline) Run(ctx context.Context, pdfDir string) (*RunSummary, error) {
	started := time.Now()
	summary := &RunSummary{}
	defer func() { summary.Duration = time.Since(started) }()

	p.logger.Info("starting ingestion", "stage", StageInit, "pdfDir", pdfDir, "parallel", p.parallel, "skipEmbed", p.skipEmbed)

	names, err := extract.ListPDFs(pdfDir)
	if err != nil {
		return summary, fmt.Errorf("listing pdf directory %s: %w", pdfDir, err)
	}
	if len(names) == 0 {
		p.logger.Warn("no pdf files found", "pdfDir", pdfDir)
		return summary, nil
	}

	results := p.extractAll(ctx, pdfDir, names)

	// runDim is fixed by the first vector observed in this run; every
	// later vector must match it.
	runDim := 0

	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if result.err != nil {
			p.logger.Error("extraction failed", "docId", result.docId, "error", result.err)
			summary.DocumentsFailed++
			summary.DocumentFailures = append(summary.DocumentFailures, DocumentFailure{
				DocId:  result.docId,
				Stage:  StageExtracting,
				Reason: result.err.Error(),
			})
			continue
		}
		if len(result.pages) == 0 {
			p.logger.Warn("document has no extractable text", "docId", result.docId)
			summary.DocumentsFailed++
			summary.DocumentFailures = append(summary.DocumentFailures, DocumentFailure{
				DocId:  result.docId,
				Stage:  StageExtracting,
				Reason: "no extractable text",
			})
			continue
		}

		if err := p.processDocument(ctx, summary, &runDim, result.docId, result.pages); err != nil {
			return summary, err
		}
	}

	p.logger.Info("ingestion complete", "stage", StageDone,
		"documentsProcessed", summary.DocumentsProcessed,
		"documentsFailed", summary.DocumentsFailed,
		"qnaChunks", summary.QnAChunks,
		"summaryChunks", summary.SummaryChunks,
		"vectorsStored", summary.VectorsStored)

	return summary, nil
}

// extractAll runs page extraction for all documents and returns results
// in the same order as names, regardless of completion order.
func (p *Pipeline) extractAll(ctx context.Context, pdfDir string, names []string) []extractResult {
	results := make([]extractResult, len(names))

	if !p.parallel {
		for i, name := range names {
			p.logger.Info("extracting document", "stage", StageExtracting, "docId", name)
			pages, err := p.extractor.ExtractPages(ctx, filepath.Join(pdfDir, name))
			results[i] = extractResult{docId: name, pages: pages, err: err}
		}
		return results
	}

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		// Pool creation only fails on invalid size, which the options
		// already reject; fall back to sequential extraction.
		p.logger.Error("worker pool creation failed, extracting sequentially", "error", err)
		p.parallel = false
		return p.extractAll(ctx, pdfDir, names)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			p.logger.Info("extracting document", "stage", StageExtracting, "docId", name)
			pages, err := p.extractor.ExtractPages(ctx, filepath.Join(pdfDir, name))
			results[i] = extractResult{docId: name, pages: pages, err: err}
		})
		if submitErr != nil {
			wg.Done()
			results[i] = extractResult{docId: name, err: submitErr}
		}
	}
	wg.Wait()

	return results
}

// processDocument chunks, embeds and persists one extracted document.
// A returned error aborts the whole run; per-document problems are
// recorded in the summary instead.
func (p *Pipeline) processDocument(ctx context.Context, summary *RunSummary, runDim *int, docId string, pages []string) error {
	doc := &core.Document{Id: docId, Pages: pages}

	p.logger.Info("chunking document", "stage", StageChunking, "docId", docId, "pages", len(pages))
	qna, summaryChunks := p.chunker.ChunkDocument(doc)
	if len(qna) == 0 && len(summaryChunks) == 0 {
		p.logger.Warn("document produced no chunks", "docId", docId)
	}

	if p.saveDir != "" {
		if err := WriteChunkFiles(p.saveDir, docId, qna, summaryChunks); err != nil {
			p.logger.Error("saving chunk files failed", "docId", docId, "error", err)
			summary.DocumentsFailed++
			summary.DocumentFailures = append(summary.DocumentFailures, DocumentFailure{
				DocId:  docId,
				Stage:  StageSaving,
				Reason: err.Error(),
			})
			return nil
		}
	}

	if !p.skipEmbed {
		for _, batch := range []struct {
			collection string
			chunks     []*core.Chunk
		}{
			{storage.CollectionQnA, qna},
			{storage.CollectionSummary, summaryChunks},
		} {
			if len(batch.chunks) == 0 {
				continue
			}

			if err := p.embedChunks(ctx, runDim, docId, batch.chunks); err != nil {
				if isFatal(err) {
					return fmt.Errorf("document %s: %w", docId, err)
				}
				p.logger.Error("embedding failed", "docId", docId, "collection", batch.collection, "error", err)
				summary.DocumentsFailed++
				summary.DocumentFailures = append(summary.DocumentFailures, DocumentFailure{
					DocId:  docId,
					Stage:  StageEmbedding,
					Reason: err.Error(),
				})
				return nil
			}

			p.persistChunks(ctx, summary, batch.collection, docId, batch.chunks)
		}
	}

	summary.DocumentsProcessed++
	summary.QnAChunks += len(qna)
	summary.SummaryChunks += len(summaryChunks)
	return nil
}

// embedChunks fills in the Vector field of every chunk, enforcing the
// run-wide dimension. The first vector of the run fixes *runDim.
func (p *Pipeline) embedChunks(ctx context.Context, runDim *int, docId string, chunks []*core.Chunk) error {
	p.logger.Info("embedding chunks", "stage", StageEmbedding, "docId", docId, "chunks", len(chunks))

	for start := 0; start < len(chunks); start += p.embedBatchSize {
		end := min(start+p.embedBatchSize, len(chunks))
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		vectors, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return err
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(batch))
		}

		for i, vector := range vectors {
			if *runDim == 0 {
				*runDim = len(vector)
				p.logger.Info("embedding dimension established", "dimension", *runDim)
			}
			if len(vector) != *runDim {
				return fmt.Errorf("%w: chunk %s has dimension %d, run uses %d",
					ErrDimensionMismatch, batch[i].Id, len(vector), *runDim)
			}
			batch[i].Vector = vector
		}
	}

	return nil
}

// persistChunks upserts one collection's chunks for a document, retrying
// the batch once. A batch that still fails is recorded in the summary and
// the run continues.
func (p *Pipeline) persistChunks(ctx context.Context, summary *RunSummary, collection, docId string, chunks []*core.Chunk) {
	p.logger.Info("persisting chunks", "stage", StagePersisting, "docId", docId, "collection", collection, "chunks", len(chunks))

	err := retryWithBackoff(ctx, func() error {
		return p.store.UpsertChunks(ctx, collection, chunks...)
	}, upsertMaxAttempts, upsertRetryBaseWait)
	if err != nil {
		ids := make([]string, len(chunks))
		for i, chunk := range chunks {
			ids[i] = chunk.Id
		}
		p.logger.Error("upsert batch failed after retry", "docId", docId, "collection", collection, "error", err)
		summary.BatchFailures = append(summary.BatchFailures, BatchFailure{
			Collection: collection,
			ChunkIds:   ids,
			Reason:     err.Error(),
		})
		return
	}

	summary.VectorsStored += len(chunks)
}

func isFatal(err error) bool {
	return errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
