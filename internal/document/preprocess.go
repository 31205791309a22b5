package document

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Denoise strength for fastNlMeansDenoising. Fixed, not tunable per
// request; scanned reports share roughly the same noise profile.
const denoiseStrength = 10

// preprocess runs the grayscale -> denoise -> Otsu binarize pipeline
// and returns the result PNG-encoded for the recognizer.
func preprocess(data []byte) ([]byte, error) {
	src, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil || src.Empty() {
		return nil, ErrInvalidImage
	}
	defer src.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	denoised := gocv.NewMat()
	defer denoised.Close()
	gocv.FastNlMeansDenoisingWithParams(gray, &denoised, denoiseStrength, 7, 21)

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(denoised, &binary, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, binary)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preprocessed image: %w", err)
	}
	defer buf.Close()

	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out, nil
}
