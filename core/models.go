package core

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ChunkKind identifies the downstream use a chunk was produced for.
type ChunkKind int

const (
	// ChunkKindQnA marks sentence-based chunks sized for question answering.
	ChunkKindQnA ChunkKind = iota + 1
	// ChunkKindSummary marks word-based chunks sized for summarization.
	ChunkKindSummary
)

// String returns the wire name of the kind ("qna" or "summary").
func (k ChunkKind) String() string {
	switch k {
	case ChunkKindQnA:
		return "qna"
	case ChunkKindSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// ParseChunkKind converts a wire name back into a ChunkKind.
// Returns ErrInvalidChunkKind for unrecognized names.
func ParseChunkKind(s string) (ChunkKind, error) {
	switch s {
	case "qna":
		return ChunkKindQnA, nil
	case "summary":
		return ChunkKindSummary, nil
	default:
		return 0, ErrInvalidChunkKind
	}
}

// ChunkID generates a deterministic identifier from a chunk's position
// within its document using BLAKE2b hashing. Identical (docId, kind, index)
// tuples always produce identical ids, which makes storage upserts
// idempotent regardless of processing order.
func ChunkID(docId string, kind ChunkKind, index int) string {
	h, _ := blake2b.New(16, nil) // 16 bytes = 128 bits
	h.Write([]byte(docId))
	h.Write([]byte{'|'})
	h.Write([]byte(kind.String()))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(index)))
	return hex.EncodeToString(h.Sum(nil))
}

// Document holds the extracted text of one source PDF.
// It is immutable once produced by the extraction stage.
type Document struct {
	Id    string   // Source filename
	Pages []string // Extracted text per page, in page order
}

// Text returns the document's full text with pages joined by a single space.
func (d *Document) Text() string {
	return strings.Join(d.Pages, " ")
}

// Chunk is a bounded span of document text produced by the chunker.
// It may be enriched with an embedding vector during processing.
type Chunk struct {
	Id        string    // Deterministic id from (DocId, Kind, Index)
	Kind      ChunkKind // Target use: qna or summary
	DocId     string    // Back-reference to the source document
	Index     int       // Zero-based position within the kind-specific sequence
	Text      string    // Chunk content
	WordCount int       // Number of words in Text
	Vector    []float32 // Embedding vector (populated by the pipeline)
}
