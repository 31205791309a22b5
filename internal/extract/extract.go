// Package extract turns recognized report text into the 13-field
// parameter record consumed by the heart disease classifier.
//
// Extraction runs in two passes over the same text: a per-field regex
// pass, then a fuzzy label-line pass filling only the gaps the regexes
// left. Fields neither pass resolves stay explicitly unknown.
package extract

import "strings"

// FromText extracts all 13 clinical parameters from recognized text.
// It always returns a complete record; absence is data, never an error.
func FromText(text string) Record {
	rec := NewRecord()

	for field, pattern := range patternRules {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		// First match wins; repeats of a label are not reconciled.
		rec[field] = Normalize(field, m[1])
	}

	fillFromLabels(rec, strings.Split(text, "\n"))

	return rec
}
