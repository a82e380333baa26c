package storage

import (
	"context"

	"github.com/souravobl/ragmill/core"
)

// Vector store collection names. A chunk's kind determines its target
// collection.
const (
	// CollectionQnA holds sentence-based chunks for question answering.
	CollectionQnA = "qna_chunks"
	// CollectionSummary holds word-based chunks for summarization.
	CollectionSummary = "summary_chunks"
)

// Collections lists all collection names.
func Collections() []string {
	return []string{CollectionQnA, CollectionSummary}
}

// CollectionForKind maps a chunk kind to its target collection name.
func CollectionForKind(kind core.ChunkKind) (string, error) {
	switch kind {
	case core.ChunkKindQnA:
		return CollectionQnA, nil
	case core.ChunkKindSummary:
		return CollectionSummary, nil
	default:
		return "", core.ErrInvalidChunkKind
	}
}

// ChunkStore persists chunk records with their vectors into named
// collections, keyed by chunk id. Implementations must be thread-safe
// and support concurrent access.
type ChunkStore interface {
	// UpsertChunks applies an ordered batch of chunks to one collection
	// as a single logical operation: each entry is inserted or replaced
	// by id, so re-running ingestion on the same input leaves exactly
	// one entry per chunk with the latest content. The whole batch is
	// validated before anything is written; a failure returns an
	// *UpsertError naming the offending chunk ids with no entries
	// applied.
	UpsertChunks(ctx context.Context, collection string, chunks ...*core.Chunk) error

	// GetChunk retrieves a single chunk by id from a collection.
	// Returns ErrNotFound if no entry exists.
	GetChunk(ctx context.Context, collection, id string) (*core.Chunk, error)

	// ListChunksByDocument retrieves a document's chunks from a
	// collection, ordered by chunk index.
	ListChunksByDocument(ctx context.Context, collection, docId string) ([]*core.Chunk, error)

	// CountChunks returns the number of entries in a collection.
	CountChunks(ctx context.Context, collection string) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
