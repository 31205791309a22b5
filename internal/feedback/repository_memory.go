package feedback

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu        sync.Mutex
	nextID    int
	Feedbacks []Feedback
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Save(_ context.Context, fb *Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fb.ID = r.nextID
	fb.CreatedAt = time.Now()
	r.nextID++
	r.Feedbacks = append(r.Feedbacks, *fb)
	return nil
}
