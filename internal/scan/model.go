package scan

import (
	"time"

	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/extract"
)

// ReportScan is one archived scan: the uploaded document's storage key
// and the parameters extracted from it.
type ReportScan struct {
	ID        int            `json:"id"`
	UserID    string         `json:"-"`
	ObjectKey string         `json:"object_key"`
	Filename  string         `json:"filename"`
	Extracted extract.Record `json:"extracted"`
	CreatedAt time.Time      `json:"created_at"`
}
