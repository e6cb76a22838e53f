package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const docxDocumentPath = "word/document.xml"

// extractDOCX verifies the file is a valid zip container, then reads
// word/document.xml and joins paragraph texts in document order,
// separated by newlines.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a valid DOCX file", ErrExtraction, filepath.Base(path))
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == docxDocumentPath {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: %s has no %s", ErrExtraction, filepath.Base(path), docxDocumentPath)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %s in %s: %v", ErrExtraction, docxDocumentPath, filepath.Base(path), err)
	}
	defer rc.Close()

	text, err := docxParagraphs(rc)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s in %s: %v", ErrExtraction, docxDocumentPath, filepath.Base(path), err)
	}
	return text, nil
}

// docxParagraphs streams the WordprocessingML tokens, collecting the
// character data of every w:t run grouped by its enclosing w:p
// paragraph. Element names are matched by local name, so the w:
// namespace prefix is irrelevant.
func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				if inParagraph {
					var run string
					if err := dec.DecodeElement(&run, &t); err != nil {
						return "", err
					}
					current.WriteString(run)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				paragraphs = append(paragraphs, current.String())
				inParagraph = false
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
