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


// Package storage provides the vector-store abstraction for chunk
// records.
//
// The ChunkStore interface decouples the pipeline from the storage
// implementation. Chunks live in two fixed collections (qna_chunks and
// summary_chunks) keyed by their deterministic ids, which makes upserts
// idempotent: re-ingesting the same documents replaces entries in place
// instead of duplicating them.
//
// Public constructors return the ChunkStore interface rather than a
// concrete type so alternative backends can be swapped in; test code
// uses the badger subpackage's in-memory constructor.
//
// All implementations must be thread-safe and accept context.Context
// for cancellation.
package storage
