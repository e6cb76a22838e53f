package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the plain text of every page in page order.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s as PDF: %v", ErrExtraction, filepath.Base(path), err)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := r.NumPage()

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: reading page %d of %s: %v", ErrExtraction, i, filepath.Base(path), err)
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
