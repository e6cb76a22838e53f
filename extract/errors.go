package extract

import "errors"

var (
	// ErrUnsupportedFileType indicates the file extension is not one of
	// pdf, docx, or txt. Unsupported files are never opened.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrExtraction indicates the parser could not read the file or the
	// file is not a valid container for its claimed type.
	ErrExtraction = errors.New("extraction failed")

	// ErrEmptyContent indicates the extracted text is blank after trimming.
	ErrEmptyContent = errors.New("empty content extracted")
)
