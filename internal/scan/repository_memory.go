package scan

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	scans  []ReportScan
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Save(_ context.Context, rec *ReportScan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	rec.CreatedAt = time.Now()
	r.nextID++
	r.scans = append(r.scans, *rec)
	return nil
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID string) ([]ReportScan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []ReportScan
	for i := len(r.scans) - 1; i >= 0; i-- {
		if r.scans[i].UserID == userID {
			out = append(out, r.scans[i])
		}
	}
	return out, nil
}
