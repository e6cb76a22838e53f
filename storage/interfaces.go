package storage

import (
	"context"

	"github.com/poiesic/storyvault/core"
)

// StoryStore persists story records into the vector table.
// A store is created once per run and used by a single writer.
type StoryStore interface {
	// AppendStories appends the batch of records in a single
	// transaction. An empty batch performs no write at all.
	// Records are never updated or deleted afterwards by this pipeline.
	AppendStories(ctx context.Context, records []*core.StoryRecord) error

	// CountStories returns the number of records currently in the table.
	CountStories(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
