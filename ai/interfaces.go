package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must wrap provider-side failures (auth, quota, malformed
// input, transport) so they satisfy errors.Is(err, ErrEmbedding).
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages the Embedder,
// ensuring credentials and configuration are passed in explicitly at
// construction time rather than read from ambient process state.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
