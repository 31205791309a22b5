package feedback

import "time"

type Feedback struct {
	ID        int       `json:"id"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
