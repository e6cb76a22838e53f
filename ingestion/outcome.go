package ingestion

import "github.com/poiesic/storyvault/core"

// Outcome is the explicit result of the per-file decision sequence.
// It carries either a built record or the error that stopped the file,
// so the caller can separate the decision from the file move and the
// table write.
type Outcome struct {
	// FileName is the base name of the intake file.
	FileName string

	// Record is the built story record; nil when the file failed.
	Record *core.StoryRecord

	// ContentKey is a short digest of the extracted text, used by the
	// driver to disambiguate story-ID collisions within a run. Empty
	// when the file failed.
	ContentKey string

	// Err is the failure cause; nil when the file succeeded.
	Err error
}

// Succeeded reports whether the file produced a record.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}
