package ocr

// Engine recognizes text in a prepared raster image.
// Interface allows faking recognition in tests.
type Engine interface {
	Recognize(image []byte) (string, error)
}
