package core

import (
	"errors"
	"testing"
)

func TestValidateChunk(t *testing.T) {
	valid := func() *Chunk {
		return &Chunk{
			Id:        ChunkID("doc.pdf", ChunkKindQnA, 0),
			Kind:      ChunkKindQnA,
			DocId:     "doc.pdf",
			Index:     0,
			Text:      "A sentence.",
			WordCount: 2,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Chunk)
		wantErr error
	}{
		{
			name:    "valid chunk",
			mutate:  func(c *Chunk) {},
			wantErr: nil,
		},
		{
			name:    "valid chunk without vector",
			mutate:  func(c *Chunk) { c.Vector = nil },
			wantErr: nil,
		},
		{
			name:    "empty id",
			mutate:  func(c *Chunk) { c.Id = "" },
			wantErr: ErrEmptyChunkId,
		},
		{
			name:    "invalid kind",
			mutate:  func(c *Chunk) { c.Kind = ChunkKind(42) },
			wantErr: ErrInvalidChunkKind,
		},
		{
			name:    "empty doc id",
			mutate:  func(c *Chunk) { c.DocId = "" },
			wantErr: ErrEmptyDocId,
		},
		{
			name:    "negative index",
			mutate:  func(c *Chunk) { c.Index = -1 },
			wantErr: ErrNegativeIndex,
		},
		{
			name:    "empty text",
			mutate:  func(c *Chunk) { c.Text = "" },
			wantErr: ErrEmptyChunkText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk := valid()
			tt.mutate(chunk)
			err := ValidateChunk(chunk)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateChunk() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChunk() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidChunk) {
				t.Errorf("ValidateChunk() error = %v, want wrapped ErrInvalidChunk", err)
			}
		})
	}
}

func TestValidateChunk_Nil(t *testing.T) {
	if err := ValidateChunk(nil); !errors.Is(err, ErrInvalidChunk) {
		t.Errorf("ValidateChunk(nil) error = %v, want ErrInvalidChunk", err)
	}
}
