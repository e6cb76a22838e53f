package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// moveFile moves src into destDir under its base name. After a
// successful call the file is present in destDir and absent from its
// previous directory. An existing file of the same name in destDir is
// overwritten; the run's intake invariant outranks keeping stale
// routed files.
func moveFile(src, destDir string) error {
	dest := filepath.Join(destDir, filepath.Base(src))

	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	// Rename fails across filesystems; fall back to copy and remove.
	if err := copyFile(src, dest); err != nil {
		return fmt.Errorf("moving %s to %s: %w", src, destDir, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing %s after copy: %w", src, err)
	}
	return nil
}

// copyFile copies src to dest, preserving the source's permission
// bits. A failed copy never leaves a partial dest behind.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}
