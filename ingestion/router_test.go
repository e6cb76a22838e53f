package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "spec.txt")
	destDir := t.TempDir()
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	require.NoError(t, moveFile(src, destDir))

	assert.NoFileExists(t, src)
	data, err := os.ReadFile(filepath.Join(destDir, "spec.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestMoveFile_OverwritesExistingDestination(t *testing.T) {
	src := filepath.Join(t.TempDir(), "spec.txt")
	destDir := t.TempDir()
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "spec.txt"), []byte("old"), 0o644))

	require.NoError(t, moveFile(src, destDir))

	assert.NoFileExists(t, src)
	data, err := os.ReadFile(filepath.Join(destDir, "spec.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyFile_PreservesSourceMode(t *testing.T) {
	src := filepath.Join(t.TempDir(), "spec.txt")
	dest := filepath.Join(t.TempDir(), "spec.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o600))

	require.NoError(t, copyFile(src, dest))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCopyFile_FailedCopyLeavesNoDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "spec.txt")

	// A directory source opens fine but fails the read, after the
	// destination has already been created.
	assert.Error(t, copyFile(t.TempDir(), dest))
	assert.NoFileExists(t, dest)
}

func TestMoveFile_MissingSource(t *testing.T) {
	err := moveFile(filepath.Join(t.TempDir(), "missing.txt"), t.TempDir())
	assert.Error(t, err)
}

func TestFolders(t *testing.T) {
	folders := Folders{Base: "UserStories"}

	assert.Equal(t, filepath.Join("UserStories", "uploaded_docs"), folders.Intake())
	assert.Equal(t, filepath.Join("UserStories", "success"), folders.Success())
	assert.Equal(t, filepath.Join("UserStories", "failure"), folders.Failure())
}

func TestFolders_Ensure(t *testing.T) {
	folders := Folders{Base: t.TempDir()}

	require.NoError(t, folders.Ensure())
	assert.DirExists(t, folders.Intake())
	assert.DirExists(t, folders.Success())
	assert.DirExists(t, folders.Failure())

	// Idempotent.
	require.NoError(t, folders.Ensure())
}
