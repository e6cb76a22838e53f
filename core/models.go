package core

import (
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ProcessedFlagNo marks a story record that has not yet been consumed
// by the downstream test-case generator. This pipeline never sets any
// other value; the transition to "YES" is owned externally.
const ProcessedFlagNo = "NO"

// StoryIDTimeLayout is the second-precision stamp appended to story IDs.
const StoryIDTimeLayout = "20060102150405"

// StoryRecord is the unit persisted into the user_stories table.
// One record is created per successfully processed intake file,
// appended exactly once and never updated by this pipeline.
type StoryRecord struct {
	StoryID        string
	DescVector     []float32 // embedding of the extracted document text
	FileName       string    // original uploaded file name, not unique across runs
	ProcessedFlags string
	Timestamp      string    // ISO-8601 with offset, captured at embedding time
	TestCases      []float32 // always empty at insertion, populated downstream
}

// GenerateStoryID derives a story ID from the file's base name
// (extension stripped) and a second-precision stamp of now.
// Two calls within the same wall-clock second for the same base name
// collide; callers that care use ContentSuffix to disambiguate.
func GenerateStoryID(fileName string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return base + "_" + now.Format(StoryIDTimeLayout)
}

// ContentSuffix returns a short hex digest of text using BLAKE2b,
// stable across calls for identical content.
func ContentSuffix(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))[:8]
}

// CurrentTimestamp formats now in the given location as ISO-8601 with offset.
func CurrentTimestamp(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(time.RFC3339)
}

// NewStoryRecord builds a story record with the pipeline-owned fields
// fixed: ProcessedFlags is "NO" and TestCases is empty. Pure function,
// no side effects.
func NewStoryRecord(storyID string, vector []float32, fileName, timestamp string) *StoryRecord {
	return &StoryRecord{
		StoryID:        storyID,
		DescVector:     vector,
		FileName:       fileName,
		ProcessedFlags: ProcessedFlagNo,
		Timestamp:      timestamp,
		TestCases:      []float32{},
	}
}
