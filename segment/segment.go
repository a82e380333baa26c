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


package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// Segmenter splits raw text into ordered sentences and words.
// It is built once per process and passed explicitly to consumers;
// the compiled expressions are safe for concurrent use.
type Segmenter struct {
	whitespace  *regexp.Regexp
	sentenceEnd *regexp.Regexp
}

// NewSegmenter creates a Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		whitespace: regexp.MustCompile(`[\s]+`),
		// A sentence ends at terminator punctuation followed by
		// whitespace or end of input.
		sentenceEnd: regexp.MustCompile(`[.!?]+(\s+|$)`),
	}
}

// Clean normalizes text before segmentation: whitespace runs collapse to
// a single space, non-printable characters are removed, and the ellipsis
// character is normalized to three dots.
func (s *Segmenter) Clean(text string) string {
	text = strings.ReplaceAll(text, "…", "...")
	text = s.whitespace.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if r != ' ' && !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(text)
}

// Sentences splits text into an ordered sequence of sentences. Text is
// cleaned first. A trailing fragment without terminator punctuation is
// kept as a final sentence so no words are lost. Empty or
// whitespace-only input yields an empty slice.
func (s *Segmenter) Sentences(text string) []string {
	text = s.Clean(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range s.sentenceEnd.FindAllStringIndex(text, -1) {
		sentence := strings.TrimSpace(text[start:loc[1]])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = loc[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// Words splits text into an ordered sequence of whitespace-delimited
// words. Text is cleaned first. Empty or whitespace-only input yields
// an empty slice.
func (s *Segmenter) Words(text string) []string {
	return strings.Fields(s.Clean(text))
}

// WordCount returns the number of whitespace-delimited words in text
// without cleaning it. Used for running totals over already-clean
// sentences.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
