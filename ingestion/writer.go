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


package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/souravobl/ragmill/core"
)

// chunkRecord is the JSON shape of a chunk in a saved chunk file.
// Vectors are deliberately omitted: the files document chunk boundaries,
// not embeddings.
type chunkRecord struct {
	Id        string `json:"id"`
	Kind      string `json:"kind"`
	DocId     string `json:"doc_id"`
	Index     int    `json:"index"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
}

// WriteChunkFiles writes a document's chunk sequences as two JSON files
// in dir, named <doc>_qna_chunks.json and <doc>_summary_chunks.json
// where <doc> is the document id without its file extension. The
// directory is created if needed; existing files are overwritten.
func WriteChunkFiles(dir, docId string, qna, summary []*core.Chunk) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	prefix := strings.TrimSuffix(docId, filepath.Ext(docId))
	if err := writeChunkFile(filepath.Join(dir, prefix+"_qna_chunks.json"), qna); err != nil {
		return err
	}
	return writeChunkFile(filepath.Join(dir, prefix+"_summary_chunks.json"), summary)
}

func writeChunkFile(path string, chunks []*core.Chunk) error {
	records := make([]chunkRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = chunkRecord{
			Id:        chunk.Id,
			Kind:      chunk.Kind.String(),
			DocId:     chunk.DocId,
			Index:     chunk.Index,
			Text:      chunk.Text,
			WordCount: chunk.WordCount,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding chunk file %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing chunk file %s: %w", path, err)
	}
	return nil
}
