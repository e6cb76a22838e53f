package ingestion

import (
	"os"
	"path/filepath"
)

// Directory names under the base folder. Every intake file ends up in
// exactly one of success or failure after a run.
const (
	intakeDirName  = "uploaded_docs"
	successDirName = "success"
	failureDirName = "failure"
)

// Folders describes the working directory layout of a run, all
// relative to a single base root.
type Folders struct {
	Base string
}

// Intake is the holding area for files awaiting processing.
func (f Folders) Intake() string {
	return filepath.Join(f.Base, intakeDirName)
}

// Success receives files whose record made it into the run batch.
func (f Folders) Success() string {
	return filepath.Join(f.Base, successDirName)
}

// Failure receives files that failed any pipeline stage.
func (f Folders) Failure() string {
	return filepath.Join(f.Base, failureDirName)
}

// Ensure creates all folders that do not yet exist.
func (f Folders) Ensure() error {
	for _, dir := range []string{f.Intake(), f.Success(), f.Failure()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
