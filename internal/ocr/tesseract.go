package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract runs the system Tesseract engine via gosseract.
// A fresh client per call keeps concurrent requests independent.
type Tesseract struct {
	lang string
}

func NewTesseract() *Tesseract {
	return &Tesseract{lang: "eng"}
}

// Recognize extracts text from a binarized image. The page is assumed
// to be a single uniform block of text (PSM 6).
func (t *Tesseract) Recognize(image []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.lang); err != nil {
		return "", fmt.Errorf("failed to set OCR language %q: %w", t.lang, err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set OCR image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)

	return FixDigitConfusion(text), nil
}
