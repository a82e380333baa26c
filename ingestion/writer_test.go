package ingestion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/souravobl/ragmill/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteChunkFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out") // must be created by the writer

	qna := []*core.Chunk{
		{
			Id:        core.ChunkID("guide.pdf", core.ChunkKindQnA, 0),
			Kind:      core.ChunkKindQnA,
			DocId:     "guide.pdf",
			Index:     0,
			Text:      "first sentence.",
			WordCount: 2,
			Vector:    []float32{1, 2, 3},
		},
	}
	summary := []*core.Chunk{
		{
			Id:        core.ChunkID("guide.pdf", core.ChunkKindSummary, 0),
			Kind:      core.ChunkKindSummary,
			DocId:     "guide.pdf",
			Index:     0,
			Text:      "first sentence.",
			WordCount: 2,
		},
	}

	require.NoError(t, WriteChunkFiles(dir, "guide.pdf", qna, summary))

	data, err := os.ReadFile(filepath.Join(dir, "guide_qna_chunks.json"))
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, qna[0].Id, records[0]["id"])
	assert.Equal(t, "qna", records[0]["kind"])
	assert.Equal(t, "guide.pdf", records[0]["doc_id"])
	assert.Equal(t, "first sentence.", records[0]["text"])
	// Vectors stay out of the saved files.
	assert.NotContains(t, records[0], "vector")

	_, err = os.Stat(filepath.Join(dir, "guide_summary_chunks.json"))
	assert.NoError(t, err)
}

func TestWriteChunkFiles_EmptySequences(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteChunkFiles(dir, "empty.pdf", nil, nil))

	data, err := os.ReadFile(filepath.Join(dir, "empty_qna_chunks.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
