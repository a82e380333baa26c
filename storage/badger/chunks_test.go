package badger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/souravobl/ragmill/core"
	"github.com/souravobl/ragmill/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.ChunkStore {
	t.Helper()
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func makeChunk(docId string, kind core.ChunkKind, index int, text string) *core.Chunk {
	return &core.Chunk{
		Id:        core.ChunkID(docId, kind, index),
		Kind:      kind,
		DocId:     docId,
		Index:     index,
		Text:      text,
		WordCount: 1,
		Vector:    []float32{float32(index), 0.5},
	}
}

func TestUpsertChunks_GetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chunk := makeChunk("doc.pdf", core.ChunkKindQnA, 0, "hello")
	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionQnA, chunk))

	got, err := store.GetChunk(ctx, storage.CollectionQnA, chunk.Id)
	require.NoError(t, err)
	assert.Equal(t, chunk, got)
}

func TestUpsertChunks_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chunks := []*core.Chunk{
		makeChunk("doc.pdf", core.ChunkKindQnA, 0, "first"),
		makeChunk("doc.pdf", core.ChunkKindQnA, 1, "second"),
	}

	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionQnA, chunks...))
	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionQnA, chunks...))

	count, err := store.CountChunks(ctx, storage.CollectionQnA)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := store.GetChunk(ctx, storage.CollectionQnA, chunks[0].Id)
	require.NoError(t, err)
	assert.Equal(t, chunks[0], got)
}

func TestUpsertChunks_ReplacesContent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chunk := makeChunk("doc.pdf", core.ChunkKindSummary, 0, "old text")
	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionSummary, chunk))

	updated := makeChunk("doc.pdf", core.ChunkKindSummary, 0, "new text")
	updated.Vector = []float32{9, 9, 9}
	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionSummary, updated))

	got, err := store.GetChunk(ctx, storage.CollectionSummary, chunk.Id)
	require.NoError(t, err)
	assert.Equal(t, "new text", got.Text)
	assert.Equal(t, []float32{9, 9, 9}, got.Vector)

	count, err := store.CountChunks(ctx, storage.CollectionSummary)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpsertChunks_InvalidEntryAppliesNothing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	good := makeChunk("doc.pdf", core.ChunkKindQnA, 0, "good")
	bad := makeChunk("doc.pdf", core.ChunkKindQnA, 1, "")

	err := store.UpsertChunks(ctx, storage.CollectionQnA, good, bad)
	require.Error(t, err)

	var upsertErr *storage.UpsertError
	require.ErrorAs(t, err, &upsertErr)
	assert.Equal(t, storage.CollectionQnA, upsertErr.Collection)
	assert.Equal(t, []string{bad.Id}, upsertErr.ChunkIds)
	assert.ErrorIs(t, err, core.ErrEmptyChunkText)

	// The valid entry must not have been applied either.
	_, err = store.GetChunk(ctx, storage.CollectionQnA, good.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpsertChunks_KindCollectionMismatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chunk := makeChunk("doc.pdf", core.ChunkKindSummary, 0, "summary text")
	err := store.UpsertChunks(ctx, storage.CollectionQnA, chunk)

	var upsertErr *storage.UpsertError
	require.ErrorAs(t, err, &upsertErr)
	assert.Equal(t, []string{chunk.Id}, upsertErr.ChunkIds)
}

func TestUpsertChunks_UnknownCollection(t *testing.T) {
	store := newTestStore(t)

	err := store.UpsertChunks(context.Background(), "mystery", makeChunk("doc.pdf", core.ChunkKindQnA, 0, "x"))
	assert.ErrorIs(t, err, storage.ErrUnknownCollection)
}

func TestGetChunk_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetChunk(context.Background(), storage.CollectionQnA, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListChunksByDocument_Ordered(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Insert out of order across two documents.
	var chunks []*core.Chunk
	for _, index := range []int{2, 0, 1} {
		chunks = append(chunks, makeChunk("a.pdf", core.ChunkKindQnA, index, fmt.Sprintf("a%d", index)))
	}
	chunks = append(chunks, makeChunk("b.pdf", core.ChunkKindQnA, 0, "b0"))
	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionQnA, chunks...))

	got, err := store.ListChunksByDocument(ctx, storage.CollectionQnA, "a.pdf")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, chunk := range got {
		assert.Equal(t, i, chunk.Index)
		assert.Equal(t, "a.pdf", chunk.DocId)
	}
}

func TestListChunksByDocument_Empty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.ListChunksByDocument(context.Background(), storage.CollectionSummary, "nobody.pdf")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCountChunks_SeparateCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionQnA,
		makeChunk("doc.pdf", core.ChunkKindQnA, 0, "q")))
	require.NoError(t, store.UpsertChunks(ctx, storage.CollectionSummary,
		makeChunk("doc.pdf", core.ChunkKindSummary, 0, "s")))

	qnaCount, err := store.CountChunks(ctx, storage.CollectionQnA)
	require.NoError(t, err)
	summaryCount, err := store.CountChunks(ctx, storage.CollectionSummary)
	require.NoError(t, err)

	assert.Equal(t, 1, qnaCount)
	assert.Equal(t, 1, summaryCount)
}

func TestUpsertChunks_ClosedStore(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	err = store.UpsertChunks(context.Background(), storage.CollectionQnA,
		makeChunk("doc.pdf", core.ChunkKindQnA, 0, "x"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestUpsertChunks_NilChunk(t *testing.T) {
	store := newTestStore(t)

	err := store.UpsertChunks(context.Background(), storage.CollectionQnA, nil)
	var upsertErr *storage.UpsertError
	require.ErrorAs(t, err, &upsertErr)
	assert.ErrorIs(t, err, core.ErrInvalidChunk)
	require.True(t, errors.Is(err, core.ErrInvalidChunk))
}
