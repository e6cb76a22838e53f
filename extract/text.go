package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// extractTXT reads the whole file as UTF-8 text.
func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrExtraction, filepath.Base(path), err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrExtraction, filepath.Base(path))
	}

	return string(data), nil
}
