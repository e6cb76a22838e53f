package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/poiesic/storyvault/ai"
	"github.com/poiesic/storyvault/core"
	"github.com/poiesic/storyvault/extract"
	"github.com/poiesic/storyvault/storage"
)

// Pipeline orchestrates one ingestion run: it enumerates intake files,
// processes them sequentially, routes each file to success or failure,
// and appends all built records to the story store in a single batch
// at the end of the run.
type Pipeline struct {
	folders  Folders
	store    storage.StoryStore
	embedder ai.Embedder
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithLocation sets the timezone used for record timestamps.
// Default is Asia/Kolkata.
func WithLocation(loc *time.Location) Option {
	return func(p *Pipeline) error {
		if loc == nil {
			return errors.New("location cannot be nil")
		}
		p.location = loc
		return nil
	}
}

// WithClock overrides the time source. Used by tests to pin story IDs
// and timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		p.now = now
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given folders,
// store, and AI provider.
func NewPipeline(folders Folders, store storage.StoryStore, provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	location, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return nil, fmt.Errorf("loading default timezone: %w", err)
	}

	p := &Pipeline{
		folders:  folders,
		store:    store,
		embedder: provider.Embedder(),
		location: location,
		now:      time.Now,
		logger:   slog.Default().With("component", "ingestion-pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			return nil, optErr
		}
	}

	return p, nil
}

// ProcessFile runs the per-file decision sequence without touching the
// intake file or the table: classify, extract, embed, and build the
// record. The caller interprets the Outcome to perform the move and
// the batched append.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) Outcome {
	fileName := filepath.Base(path)

	// Unknown types are routed to failure without ever opening the file.
	if extract.DetectFileType(path) == extract.FileTypeUnknown {
		return Outcome{
			FileName: fileName,
			Err:      fmt.Errorf("%w: %q", extract.ErrUnsupportedFileType, filepath.Ext(path)),
		}
	}

	text, err := extract.Extract(path)
	if err != nil {
		return Outcome{FileName: fileName, Err: err}
	}

	vector, err := p.embedder.EmbedText(ctx, text)
	if err != nil {
		if !errors.Is(err, ai.ErrEmbedding) {
			err = fmt.Errorf("%w: %v", ai.ErrEmbedding, err)
		}
		return Outcome{FileName: fileName, Err: err}
	}

	now := p.now()
	record := core.NewStoryRecord(
		core.GenerateStoryID(fileName, now),
		vector,
		fileName,
		core.CurrentTimestamp(now, p.location),
	)

	if err := core.ValidateStoryRecord(record); err != nil {
		return Outcome{FileName: fileName, Err: err}
	}

	return Outcome{
		FileName:   fileName,
		Record:     record,
		ContentKey: core.ContentSuffix(text),
	}
}

// FileFailure records why a single intake file was routed to failure.
type FileFailure struct {
	FileName string
	Reason   error
}

// Summary reports the result of one run.
type Summary struct {
	Processed int // intake files seen
	Inserted  int // records appended to the table
	Failed    []FileFailure
}

// Run performs one pass over the intake directory. Per-file failures
// are isolated: the file is moved to the failure folder, the failure
// is reported in the summary, and the run continues. Only environment
// failures abort the run: listing the intake directory, moving a file,
// or the final batched append.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	if err := p.folders.Ensure(); err != nil {
		return nil, fmt.Errorf("preparing folders: %w", err)
	}

	entries, err := os.ReadDir(p.folders.Intake())
	if err != nil {
		return nil, fmt.Errorf("listing intake directory: %w", err)
	}

	summary := &Summary{}
	issued := make(map[string]bool)
	var batch []*core.StoryRecord

	for _, entry := range entries {
		path := filepath.Join(p.folders.Intake(), entry.Name())
		if !entry.Type().IsRegular() {
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			// A symlink to a regular file is processed like the file
			// it points to; anything else stays skipped.
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		summary.Processed++

		outcome := p.ProcessFile(ctx, path)
		if !outcome.Succeeded() {
			p.logger.Warn("failed to process file", "file", outcome.FileName, "err", outcome.Err)
			summary.Failed = append(summary.Failed, FileFailure{FileName: outcome.FileName, Reason: outcome.Err})
			if moveErr := moveFile(path, p.folders.Failure()); moveErr != nil {
				return nil, moveErr
			}
			continue
		}

		record := outcome.Record
		if issued[record.StoryID] {
			// Same base name within the same second; disambiguate with
			// a digest of the extracted text, then a counter for files
			// whose extracted text is also identical.
			id := record.StoryID + "_" + outcome.ContentKey
			for n := 2; issued[id]; n++ {
				id = fmt.Sprintf("%s_%s_%d", record.StoryID, outcome.ContentKey, n)
			}
			record.StoryID = id
			p.logger.Debug("story ID collision", "file", record.FileName, "story_id", record.StoryID)
		}
		issued[record.StoryID] = true

		batch = append(batch, record)
		if moveErr := moveFile(path, p.folders.Success()); moveErr != nil {
			return nil, moveErr
		}
		p.logger.Info("processed file", "file", record.FileName, "story_id", record.StoryID)
	}

	// The run's only table write. Skipped entirely for an empty batch.
	if len(batch) > 0 {
		if err := p.store.AppendStories(ctx, batch); err != nil {
			return nil, fmt.Errorf("appending story batch: %w", err)
		}
	}
	summary.Inserted = len(batch)

	p.logger.Info("run complete",
		"processed", summary.Processed,
		"inserted", summary.Inserted,
		"failed", len(summary.Failed))

	return summary, nil
}
