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


package chunker

import (
	"strings"

	"github.com/souravobl/ragmill/core"
	"github.com/souravobl/ragmill/segment"
)

const (
	// DefaultQnATargetWords is the target word count for Q&A chunks.
	DefaultQnATargetWords = 300
	// DefaultSummaryTargetWords is the target word count for summary chunks.
	DefaultSummaryTargetWords = 1000
)

// Chunker splits document text into Q&A and summary chunk sequences.
// Q&A chunks accumulate whole sentences up to a target word count with a
// one-sentence overlap between consecutive chunks; summary chunks are
// fixed-size word groups with no overlap.
//
// Chunking never fails: empty or whitespace-only input yields an empty
// chunk sequence so one bad document cannot abort a batch.
type Chunker struct {
	seg                *segment.Segmenter
	qnaTargetWords     int
	summaryTargetWords int
}

// Option configures a Chunker.
type Option func(*Chunker) error

// WithQnATargetWords sets the Q&A chunk target word count.
func WithQnATargetWords(target int) Option {
	return func(c *Chunker) error {
		if target < 1 {
			return ErrInvalidTargetWords
		}
		c.qnaTargetWords = target
		return nil
	}
}

// WithSummaryTargetWords sets the summary chunk target word count.
func WithSummaryTargetWords(target int) Option {
	return func(c *Chunker) error {
		if target < 1 {
			return ErrInvalidTargetWords
		}
		c.summaryTargetWords = target
		return nil
	}
}

// New creates a Chunker using the given segmenter.
func New(seg *segment.Segmenter, opts ...Option) (*Chunker, error) {
	if seg == nil {
		return nil, ErrSegmenterRequired
	}

	c := &Chunker{
		seg:                seg,
		qnaTargetWords:     DefaultQnATargetWords,
		summaryTargetWords: DefaultSummaryTargetWords,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ChunkDocument produces both chunk sequences for a document.
func (c *Chunker) ChunkDocument(doc *core.Document) (qna, summary []*core.Chunk) {
	text := doc.Text()
	return c.QnAChunks(doc.Id, text), c.SummaryChunks(doc.Id, text)
}

// QnAChunks produces sentence-based chunks for question answering.
// Consecutive sentences are accumulated greedily; a chunk closes when the
// next sentence would push its word count past the target. Each chunk
// after the first starts with the previous chunk's last sentence repeated
// as context overlap. Sentences are never split: a chunk always consumes
// at least one new sentence even if that sentence alone exceeds the
// target.
func (c *Chunker) QnAChunks(docId, text string) []*core.Chunk {
	sentences := c.seg.Sentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []*core.Chunk
	overlap := "" // last sentence of the previous chunk, empty for the first
	i := 0
	for i < len(sentences) {
		var current []string
		words := 0
		if overlap != "" {
			current = append(current, overlap)
			words = segment.WordCount(overlap)
		}

		// Always consume at least one new sentence.
		current = append(current, sentences[i])
		words += segment.WordCount(sentences[i])
		i++

		for i < len(sentences) && words+segment.WordCount(sentences[i]) <= c.qnaTargetWords {
			current = append(current, sentences[i])
			words += segment.WordCount(sentences[i])
			i++
		}

		chunks = append(chunks, newChunk(docId, core.ChunkKindQnA, len(chunks), strings.Join(current, " "), words))
		overlap = sentences[i-1]
	}

	return chunks
}

// SummaryChunks produces word-based chunks for summarization: consecutive
// groups of exactly the target word count, with the remainder in the
// final chunk and no repeated content between chunks.
func (c *Chunker) SummaryChunks(docId, text string) []*core.Chunk {
	words := c.seg.Words(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []*core.Chunk
	for start := 0; start < len(words); start += c.summaryTargetWords {
		end := min(start+c.summaryTargetWords, len(words))
		group := words[start:end]
		chunks = append(chunks, newChunk(docId, core.ChunkKindSummary, len(chunks), strings.Join(group, " "), len(group)))
	}

	return chunks
}

func newChunk(docId string, kind core.ChunkKind, index int, text string, wordCount int) *core.Chunk {
	return &core.Chunk{
		Id:        core.ChunkID(docId, kind, index),
		Kind:      kind,
		DocId:     docId,
		Index:     index,
		Text:      text,
		WordCount: wordCount,
	}
}
