package core

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateStoryID(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "txt file",
			fileName: "spec.txt",
			want:     "spec_20250314092653",
		},
		{
			name:     "pdf file",
			fileName: "release notes.pdf",
			want:     "release notes_20250314092653",
		},
		{
			name:     "no extension",
			fileName: "README",
			want:     "README_20250314092653",
		},
		{
			name:     "multiple dots keeps earlier parts",
			fileName: "v1.2.report.docx",
			want:     "v1.2.report_20250314092653",
		},
		{
			name:     "path is reduced to base name",
			fileName: "uploaded_docs/spec.txt",
			want:     "spec_20250314092653",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateStoryID(tt.fileName, now)
			if got != tt.want {
				t.Errorf("GenerateStoryID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateStoryID_SecondGranularity(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	// Sub-second differences collapse to the same ID.
	id1 := GenerateStoryID("spec.txt", base)
	id2 := GenerateStoryID("spec.txt", base.Add(500*time.Millisecond))
	if id1 != id2 {
		t.Errorf("IDs within the same second differ: %q vs %q", id1, id2)
	}

	// A full second apart produces distinct IDs.
	id3 := GenerateStoryID("spec.txt", base.Add(time.Second))
	if id1 == id3 {
		t.Errorf("IDs a second apart collide: %q", id1)
	}
}

func TestContentSuffix(t *testing.T) {
	s1 := ContentSuffix("As a user, I want to log in.")
	s2 := ContentSuffix("As a user, I want to log in.")
	s3 := ContentSuffix("As a user, I want to log out.")

	if s1 != s2 {
		t.Errorf("ContentSuffix() not stable: %q vs %q", s1, s2)
	}
	if s1 == s3 {
		t.Errorf("ContentSuffix() produced same suffix for different content")
	}
	if len(s1) != 8 {
		t.Errorf("ContentSuffix() length = %d, want 8", len(s1))
	}
	if strings.ToLower(s1) != s1 {
		t.Errorf("ContentSuffix() not lowercase hex: %q", s1)
	}
}

func TestCurrentTimestamp(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}

	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	got := CurrentTimestamp(now, loc)

	want := "2025-03-14T14:56:53+05:30"
	if got != want {
		t.Errorf("CurrentTimestamp() = %q, want %q", got, want)
	}
}

func TestNewStoryRecord(t *testing.T) {
	vector := []float32{0.1, 0.2, 0.3}
	record := NewStoryRecord("spec_20250314092653", vector, "spec.txt", "2025-03-14T14:56:53+05:30")

	if record.StoryID != "spec_20250314092653" {
		t.Errorf("StoryID = %q", record.StoryID)
	}
	if record.FileName != "spec.txt" {
		t.Errorf("FileName = %q", record.FileName)
	}
	if record.ProcessedFlags != ProcessedFlagNo {
		t.Errorf("ProcessedFlags = %q, want %q", record.ProcessedFlags, ProcessedFlagNo)
	}
	if record.TestCases == nil || len(record.TestCases) != 0 {
		t.Errorf("TestCases = %v, want empty non-nil slice", record.TestCases)
	}
	if len(record.DescVector) != 3 {
		t.Errorf("DescVector length = %d, want 3", len(record.DescVector))
	}
}

func TestNewStoryRecord_IdenticalInputsExceptTimestamp(t *testing.T) {
	vector := []float32{0.5, 0.6}

	a := NewStoryRecord("spec_20250314092653", vector, "spec.txt", "2025-03-14T14:56:53+05:30")
	b := NewStoryRecord("spec_20250314092654", vector, "spec.txt", "2025-03-14T14:56:54+05:30")

	if a.FileName != b.FileName {
		t.Errorf("FileName differs: %q vs %q", a.FileName, b.FileName)
	}
	if a.ProcessedFlags != b.ProcessedFlags {
		t.Errorf("ProcessedFlags differs: %q vs %q", a.ProcessedFlags, b.ProcessedFlags)
	}
	if len(a.DescVector) != len(b.DescVector) {
		t.Errorf("DescVector length differs")
	}
	if len(a.TestCases) != 0 || len(b.TestCases) != 0 {
		t.Errorf("TestCases not empty")
	}
}
