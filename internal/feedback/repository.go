package feedback

import "context"

type Repository interface {
	Save(ctx context.Context, fb *Feedback) error
}
