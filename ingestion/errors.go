package ingestion

import "errors"

var (
	// ErrStoreRequired is returned when a story store is not provided.
	ErrStoreRequired = errors.New("story store required")

	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")
)
