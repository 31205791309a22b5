package ocr

import "regexp"

// Tesseract routinely reads the digit 0 as the letter O inside numeric
// values ("12O", "O.5"). Only O touching a digit is rewritten; words
// like "BLOOD" are left alone.
var (
	oAfterDigit  = regexp.MustCompile(`(\d)O`)
	oBeforeDigit = regexp.MustCompile(`O(\d)`)
)

// FixDigitConfusion replaces a letter O adjacent to a digit with 0.
func FixDigitConfusion(text string) string {
	text = oAfterDigit.ReplaceAllString(text, "${1}0")
	return oBeforeDigit.ReplaceAllString(text, "0${1}")
}
