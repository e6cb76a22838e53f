package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType classifies an intake file by extension.
type FileType string

const (
	FileTypePDF     FileType = "pdf"
	FileTypeDOCX    FileType = "docx"
	FileTypeTXT     FileType = "txt"
	FileTypeUnknown FileType = "unknown"
)

// DetectFileType classifies a file path by its lowercased extension.
// Anything other than .pdf, .docx, or .txt maps to FileTypeUnknown.
func DetectFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FileTypePDF
	case ".docx":
		return FileTypeDOCX
	case ".txt":
		return FileTypeTXT
	default:
		return FileTypeUnknown
	}
}

// Extract classifies path and dispatches to the matching extraction
// strategy. The returned text is guaranteed to be non-blank after
// trimming; a whitespace-only document fails with ErrEmptyContent.
// Files of unknown type fail with ErrUnsupportedFileType without being
// opened.
func Extract(path string) (string, error) {
	var text string
	var err error

	switch DetectFileType(path) {
	case FileTypePDF:
		text, err = extractPDF(path)
	case FileTypeDOCX:
		text, err = extractDOCX(path)
	case FileTypeTXT:
		text, err = extractTXT(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Ext(path))
	}

	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyContent, filepath.Base(path))
	}

	return text, nil
}
