package model

import "time"

// ModelState is a snapshot of a learner model for one user over one domain.
// Data holds the model as a JSON document.
type ModelState struct {
	ID        int64
	UserID    int64
	DomainID  int64
	Type      string
	Creator   string
	Data      string
	CreatedAt time.Time
}
