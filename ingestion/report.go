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
	"fmt"
	"io"
	"time"
)

// Stage identifies a phase of a pipeline run.
type Stage string

const (
	StageInit       Stage = "init"
	StageExtracting Stage = "extracting"
	StageChunking   Stage = "chunking"
	StageSaving     Stage = "saving"
	StageEmbedding  Stage = "embedding"
	StagePersisting Stage = "persisting"
	StageDone       Stage = "done"
)

// DocumentFailure records a per-document error. The document contributes
// zero chunks; the run continues.
type DocumentFailure struct {
	DocId  string
	Stage  Stage
	Reason string
}

// BatchFailure records an upsert batch that failed after its retry.
// The listed chunks were not persisted; the run continues.
type BatchFailure struct {
	Collection string
	ChunkIds   []string
	Reason     string
}

// RunSummary reports the outcome of one pipeline run.
type RunSummary struct {
	DocumentsProcessed int
	DocumentsFailed    int
	QnAChunks          int
	SummaryChunks      int
	VectorsStored      int
	Duration           time.Duration

	DocumentFailures []DocumentFailure
	BatchFailures    []BatchFailure
}

// Write renders the summary in a human-readable form.
func (s *RunSummary) Write(w io.Writer) {
	fmt.Fprintf(w, "Documents processed: %d\n", s.DocumentsProcessed)
	fmt.Fprintf(w, "Documents failed:    %d\n", s.DocumentsFailed)
	fmt.Fprintf(w, "Q&A chunks:          %d\n", s.QnAChunks)
	fmt.Fprintf(w, "Summary chunks:      %d\n", s.SummaryChunks)
	fmt.Fprintf(w, "Vectors stored:      %d\n", s.VectorsStored)
	fmt.Fprintf(w, "Duration:            %s\n", s.Duration.Round(time.Millisecond))

	for _, f := range s.DocumentFailures {
		fmt.Fprintf(w, "  failed document %s (%s): %s\n", f.DocId, f.Stage, f.Reason)
	}
	for _, f := range s.BatchFailures {
		fmt.Fprintf(w, "  failed batch in %s (%d chunks): %s\n", f.Collection, len(f.ChunkIds), f.Reason)
	}
}
