package chunker

import "errors"

var (
	// ErrSegmenterRequired is returned when a segmenter is not provided.
	ErrSegmenterRequired = errors.New("segmenter required")

	// ErrInvalidTargetWords is returned for non-positive chunk targets.
	ErrInvalidTargetWords = errors.New("target word count must be positive")
)
