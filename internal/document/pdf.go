package document

import (
	"bytes"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// renderFirstPage rasterizes page 1 of a PDF and returns it PNG-encoded,
// so PDF uploads rejoin the raster path in preprocess.
func renderFirstPage(data []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, ErrDocumentConversion
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, ErrEmptyDocument
	}

	img, err := doc.Image(0)
	if err != nil {
		return nil, ErrDocumentConversion
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, ErrDocumentConversion
	}

	return buf.Bytes(), nil
}
