// Package extract classifies uploaded documents by extension and
// extracts their text.
//
// Supported formats:
//   - .pdf: page texts concatenated in page order (github.com/ledongthuc/pdf)
//   - .docx: zip container check, then word/document.xml paragraphs
//     joined by newlines (archive/zip + encoding/xml)
//   - .txt: whole file read as UTF-8
//
// Every strategy enforces the same post-condition: the extracted text
// must be non-blank after trimming, otherwise ErrEmptyContent is
// returned. Failures are classified with the package sentinel errors
// so callers can route files with errors.Is.
package extract
