// Package ai defines the embedding service contract used by the
// chunking pipeline.
//
// The Embedder interface abstracts the model that turns chunk text into
// fixed-dimension vectors. The openai subpackage implements it against
// any OpenAI-compatible API; the mock subpackage provides a
// deterministic test double.
package ai
