package extract

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// A fuzzy match must score strictly above this (0-100) before the line
// is trusted as the field's label line.
const fallbackThreshold = 80

var numberToken = regexp.MustCompile(`(\d+\.?\d*)`)

// fillFromLabels is the second extraction pass. For each fallback field
// still unset it fuzzy-matches the canonical label phrase against every
// line, recovering labels the regex alphabet missed ("Choiesterol"),
// and pulls the first numeric token from the winning line. Fields the
// pattern pass already filled are never touched.
func fillFromLabels(rec Record, lines []string) {
	for field, label := range fallbackLabels {
		if rec[field] != nil {
			continue
		}

		line, score := bestLine(label, lines)
		if score <= fallbackThreshold {
			continue
		}

		if tok := numberToken.FindString(line); tok != "" {
			rec[field] = Normalize(field, tok)
		}
	}
}

// bestLine returns the line scoring highest against the label phrase
// and its 0-100 score. Ties keep the earliest line.
func bestLine(label string, lines []string) (string, int) {
	best := ""
	bestScore := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if score := fuzzy.WRatio(label, line); score > bestScore {
			best = line
			bestScore = score
		}
	}

	return best, bestScore
}
