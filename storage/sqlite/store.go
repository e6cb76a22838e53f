package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/poiesic/storyvault/core"
	"github.com/poiesic/storyvault/storage"
)

// TableName is the fixed destination table for story records.
const TableName = "user_stories"

// The schema is created once; reopening an existing database leaves it
// untouched (no migration logic).
const createTableStmt = `
CREATE TABLE IF NOT EXISTS user_stories (
	story_id          TEXT PRIMARY KEY,
	story_desc_vector BLOB NOT NULL,
	file_name         TEXT NOT NULL,
	processed_flags   TEXT NOT NULL,
	timestamp         TEXT NOT NULL,
	test_cases        BLOB NOT NULL
)`

// Store implements storage.StoryStore on a SQLite database file.
// Vectors are stored as little-endian float32 blobs.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	closed bool
}

var _ storage.StoryStore = (*Store)(nil)

// Open opens or creates the database at path and ensures the
// user_stories table exists. Pass ":memory:" for an in-memory database
// (used by tests).
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Single writer; avoids "database is locked" across the append and
	// any concurrent count queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating %s table: %w", TableName, err)
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "sqlite-store"),
	}, nil
}

// AppendStories appends the batch in one transaction. An empty batch
// performs no write.
func (s *Store) AppendStories(ctx context.Context, records []*core.StoryRecord) error {
	if s.closed {
		return storage.ErrStoreClosed
	}
	if len(records) == 0 {
		s.logger.Debug("empty batch, skipping table write")
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrAppendFailed, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO user_stories (story_id, story_desc_vector, file_name, processed_flags, timestamp, test_cases)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: preparing insert: %v", storage.ErrAppendFailed, err)
	}
	defer stmt.Close()

	for _, record := range records {
		if err := core.ValidateStoryRecord(record); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: %v", storage.ErrAppendFailed, err)
		}

		_, err := stmt.ExecContext(ctx,
			record.StoryID,
			storage.EncodeVector(record.DescVector),
			record.FileName,
			record.ProcessedFlags,
			record.Timestamp,
			storage.EncodeVector(record.TestCases),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: inserting %s: %v", storage.ErrAppendFailed, record.StoryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing batch: %v", storage.ErrAppendFailed, err)
	}

	s.logger.Debug("batch appended", "records", len(records))
	return nil
}

// CountStories returns the number of records in the table.
func (s *Store) CountStories(ctx context.Context) (int, error) {
	if s.closed {
		return 0, storage.ErrStoreClosed
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_stories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting stories: %w", err)
	}
	return count, nil
}

// GetStory retrieves a single record by story ID. Mainly useful for
// verification; the pipeline itself never reads records back.
func (s *Store) GetStory(ctx context.Context, storyID string) (*core.StoryRecord, error) {
	if s.closed {
		return nil, storage.ErrStoreClosed
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT story_id, story_desc_vector, file_name, processed_flags, timestamp, test_cases
		FROM user_stories WHERE story_id = ?`, storyID)

	var record core.StoryRecord
	var descBlob, testBlob []byte
	err := row.Scan(&record.StoryID, &descBlob, &record.FileName, &record.ProcessedFlags, &record.Timestamp, &testBlob)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, storyID)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning story %s: %w", storyID, err)
	}

	if record.DescVector, err = storage.DecodeVector(descBlob); err != nil {
		return nil, fmt.Errorf("decoding description vector of %s: %w", storyID, err)
	}
	if record.TestCases, err = storage.DecodeVector(testBlob); err != nil {
		return nil, fmt.Errorf("decoding test-case vector of %s: %w", storyID, err)
	}

	return &record, nil
}

// Close closes the underlying database. Subsequent operations return
// storage.ErrStoreClosed.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
