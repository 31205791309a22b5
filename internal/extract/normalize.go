package extract

import (
	"strconv"
	"strings"
)

type categoryRule struct {
	substr string
	code   float64
}

// categoryRules maps multi-valued categorical fields to ordered
// substring rules; the first matching rule wins. "atyp" must precede
// "typ" or atypical angina would encode as typical.
var categoryRules = map[string][]categoryRule{
	"cp": {
		{"atyp", 1},
		{"typ", 0},
		{"non", 2},
		{"asymp", 3},
		{"none", 3},
	},
	"slope": {
		{"up", 0},
		{"flat", 1},
		{"down", 2},
	},
	"thal": {
		{"norm", 1},
		{"fix", 2},
		{"rev", 3},
	},
}

// truthyTokens enumerates the tokens encoding 1 for each binary field.
var truthyTokens = map[string]map[string]bool{
	"sex":   {"male": true, "m": true, "1": true},
	"fbs":   {"1": true, "true": true, ">120": true, "high": true},
	"exang": {"1": true, "yes": true, "y": true, "true": true},
}

// Normalize maps a raw captured token to the numeric code the
// classifier expects. Pure function of (field, token); nil means the
// value could not be determined.
func Normalize(field, token string) *float64 {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil
	}

	if truthy, ok := truthyTokens[field]; ok {
		// Any unrecognized token encodes as 0 here, not unknown. The
		// classifier was trained against records built this way; see
		// DESIGN.md before changing it.
		if truthy[token] {
			return ptr(1)
		}
		return ptr(0)
	}

	if rules, ok := categoryRules[field]; ok {
		for _, r := range rules {
			if strings.Contains(token, r.substr) {
				return ptr(r.code)
			}
		}
		// Categorical fields may still carry a bare numeric code.
		return parseNumber(token)
	}

	return parseNumber(token)
}

// parseNumber parses a decimal when a point is present, an integer
// otherwise.
func parseNumber(token string) *float64 {
	if strings.Contains(token, ".") {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil
		}
		return &f
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return nil
	}
	f := float64(n)
	return &f
}

func ptr(v float64) *float64 {
	return &v
}
