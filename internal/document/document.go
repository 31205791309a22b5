package document

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrDocumentConversion means the PDF could not be rendered.
	// Surfaced to the user with a hint to upload an image instead.
	ErrDocumentConversion = errors.New("could not convert document")

	// ErrInvalidImage means the bytes did not decode as a raster image.
	ErrInvalidImage = errors.New("invalid image file")

	// ErrEmptyDocument means the PDF rendered but had zero pages.
	ErrEmptyDocument = errors.New("document contains no pages")
)

// IsPDF reports whether the upload should be treated as a paginated
// document rather than a single raster image.
func IsPDF(contentType, filename string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

// Normalize converts an uploaded report into a binarized PNG ready for
// text recognition. PDFs contribute only their first page.
func Normalize(data []byte, contentType, filename string) ([]byte, error) {
	if IsPDF(contentType, filename) {
		page, err := renderFirstPage(data)
		if err != nil {
			return nil, err
		}
		data = page
	}

	return preprocess(data)
}
