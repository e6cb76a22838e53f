package ai

import "errors"

// ErrEmbedding indicates that the embedding provider call failed.
// The pipeline treats this the same as an extraction failure.
var ErrEmbedding = errors.New("embedding failed")
