package extract

import "regexp"

// patternRules is the primary extraction table: one regex per field
// matching its label synonyms, an optional separator, and the value
// token in capture group 1. Built once at init, read-only afterwards.
// Report layouts vary by lab, so labels are synonym sets rather than
// fixed positions.
var patternRules = map[string]*regexp.Regexp{
	"age":      regexp.MustCompile(`(?i)(?:age|yr|years?|a\.ge)\s*[:\-]?\s*(\d{1,3})`),
	"sex":      regexp.MustCompile(`(?i)(?:sex|gender|gen)\s*[:\-]?\s*(male|female|m|f|0|1)`),
	"cp":       regexp.MustCompile(`(?i)(?:chest\s*pain(?:\s*type)?|cp\s*type|angina|chest\s*pn)\s*[:\-]?\s*(\d|typical|atypical|non-anginal|asymptomatic|none)`),
	"trestbps": regexp.MustCompile(`(?i)(?:resting\s*bp|blood\s*pressure|systolic|trestbps|rbp|bp)\s*[:\-]?\s*(\d{2,3})`),
	"chol":     regexp.MustCompile(`(?i)(?:cholesterol|chol|total\s*lipid|serum\s*chol)\s*[:\-]?\s*(\d{2,3})`),
	"fbs":      regexp.MustCompile(`(?i)(?:fasting\s*blood\s*sugar|fbs|glucose|glu|sugar)\s*[:\-]?\s*(\d|true|false|>120|<120)`),
	"restecg":  regexp.MustCompile(`(?i)(?:resting\s*ecg|electrocardiographic|restecg|ecg\s*res)\s*[:\-]?\s*(\d|normal|st-t|lv\s*hypertrophy)`),
	"thalach":  regexp.MustCompile(`(?i)(?:max\s*heart\s*rate|thalach|mhr|peak\s*hr|max\s*hr)\s*[:\-]?\s*(\d{2,3})`),
	"exang":    regexp.MustCompile(`(?i)(?:exercise\s*induced\s*angina|exang|eia|angina\s*ex)\s*[:\-]?\s*(\d|yes|no|y|n)`),
	"oldpeak":  regexp.MustCompile(`(?i)(?:st\s*depression|oldpeak|st\s*seg|st\s*dep)\s*[:\-]?\s*(\d?\.?\d+)`),
	"slope":    regexp.MustCompile(`(?i)(?:st\s*slope|slope|peak\s*st|slp)\s*[:\-]?\s*(\d|upsloping|flat|downsloping)`),
	"ca":       regexp.MustCompile(`(?i)(?:vessels?|ca|fluoroscopy|major\s*vessels)\s*[:\-]?\s*(\d)`),
	"thal":     regexp.MustCompile(`(?i)(?:thallium|thal|stress\s*test|thallium\s*stress)\s*[:\-]?\s*(\d|normal|fixed|reversible)`),
}

// fallbackLabels covers the fields most often missed by the regex pass
// due to label phrasing variance. The fuzzy locator searches lines for
// these canonical phrases.
var fallbackLabels = map[string]string{
	"chol":     "Cholesterol",
	"trestbps": "Resting Blood Pressure",
	"thalach":  "Max Heart Rate",
	"oldpeak":  "ST Depression",
	"cp":       "Chest Pain",
}
