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


package ragmill

import (
	"log/slog"

	"github.com/souravobl/ragmill/ai"
	"github.com/souravobl/ragmill/ai/openai"
	"github.com/souravobl/ragmill/chunker"
	"github.com/souravobl/ragmill/extract"
	"github.com/souravobl/ragmill/ingestion"
	"github.com/souravobl/ragmill/segment"
	"github.com/souravobl/ragmill/storage"
	"github.com/souravobl/ragmill/storage/badger"
)

// Mill bundles the vector store and embedding service behind one handle
// and builds ingestion pipelines over them.
type Mill struct {
	backend  *badger.Backend
	store    storage.ChunkStore
	embedder ai.Embedder
	logger   *slog.Logger
}

// MillOption configures a Mill.
type MillOption func(*millOptions)

type millOptions struct {
	aiConfig  *ai.Config
	skipEmbed bool
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(cfg *ai.Config) MillOption {
	return func(o *millOptions) {
		o.aiConfig = cfg
	}
}

// WithoutEmbedder skips embedder construction entirely; pipelines built
// from the Mill must then run with ingestion.WithSkipEmbed.
func WithoutEmbedder() MillOption {
	return func(o *millOptions) {
		o.skipEmbed = true
	}
}

// NewMill opens the vector store at filePath and connects the embedder.
func NewMill(filePath string, opts ...MillOption) (*Mill, error) {
	// Apply options
	options := &millOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	store := badger.NewChunkStore(backend)

	// Connect the embedding service unless skipped
	var embedder ai.Embedder
	if !options.skipEmbed {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	return &Mill{
		backend:  backend,
		store:    store,
		embedder: embedder,
		logger:   slog.Default(),
	}, nil
}

func (m *Mill) Close() error {
	// Closing the store closes the shared backend
	if err := m.store.Close(); err != nil {
		m.logger.Error("error closing chunk store", "err", err)
		return err
	}
	return nil
}

func (m *Mill) ChunkStore() storage.ChunkStore {
	return m.store
}

func (m *Mill) Embedder() ai.Embedder {
	return m.embedder
}

// NewIngestionPipeline builds a pipeline over the Mill's store and
// embedder using the default PDF extractor and chunker.
func (m *Mill) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	chk, err := chunker.New(segment.NewSegmenter())
	if err != nil {
		return nil, err
	}
	return ingestion.NewPipeline(extract.NewPDFExtractor(), chk, m.embedder, m.store, opts...)
}
