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


// Package ingestion orchestrates the document ingestion pipeline:
// PDF text extraction, chunking, embedding, and vector store persistence.
//
// Extraction can run in parallel across documents; the later stages run
// per document in directory order. Failures are handled at three levels:
// a bad document is skipped and recorded, an upsert batch that fails
// after retry is recorded and skipped, and an embedding dimension change
// aborts the run to protect the store.
package ingestion
