package ingestion

import "errors"

var (
	// ErrExtractorRequired is returned when an extractor is not provided.
	ErrExtractorRequired = errors.New("extractor required")

	// ErrChunkerRequired is returned when a chunker is not provided.
	ErrChunkerRequired = errors.New("chunker required")

	// ErrEmbedderRequired is returned when embedding is enabled but no
	// embedder is provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrStoreRequired is returned when embedding is enabled but no
	// chunk store is provided.
	ErrStoreRequired = errors.New("chunk store required")

	// ErrDimensionMismatch is returned when the embedding service yields
	// a vector whose length differs from the first vector observed in
	// the run. Mixed dimensionality corrupts the shared collections, so
	// the run halts; entries persisted before the mismatch remain.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrInvalidMaxAttempts is returned for non-positive retry attempt counts.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)
