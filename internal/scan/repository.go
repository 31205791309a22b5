package scan

import "context"

// Repository persists scan history.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, rec *ReportScan) error
	ListByUser(ctx context.Context, userID string) ([]ReportScan, error)
}
