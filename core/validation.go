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


package core

import "fmt"

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Kind must be valid (qna or summary)
//   - DocId must not be empty
//   - Index must not be negative
//   - Text must not be empty
//
// NOT validated (populated by the pipeline):
//   - Vector (can be empty until the embedding stage runs)
//   - WordCount (informational, derived from Text by the chunker)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkId)
	}

	if err := ValidateChunkKind(chunk.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}

	if chunk.DocId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyDocId)
	}

	if chunk.Index < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrNegativeIndex)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkText)
	}

	return nil
}

// ValidateChunkKind validates that a ChunkKind has a valid value.
func ValidateChunkKind(kind ChunkKind) error {
	if kind != ChunkKindQnA && kind != ChunkKindSummary {
		return fmt.Errorf("%w: value %d", ErrInvalidChunkKind, kind)
	}
	return nil
}
