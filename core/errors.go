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

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidChunkKind indicates an unrecognized ChunkKind value.
	ErrInvalidChunkKind = errors.New("invalid chunk kind")

	// ErrEmptyChunkId indicates the Id field is empty.
	ErrEmptyChunkId = errors.New("chunk id cannot be empty")

	// ErrEmptyDocId indicates the DocId field is empty.
	ErrEmptyDocId = errors.New("document id cannot be empty")

	// ErrNegativeIndex indicates the Index field is negative.
	ErrNegativeIndex = errors.New("chunk index cannot be negative")

	// ErrEmptyChunkText indicates the Text field is empty.
	ErrEmptyChunkText = errors.New("chunk text cannot be empty")
)
