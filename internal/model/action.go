package model

import "time"

// Action is one learner interaction recorded for a project.
type Action struct {
	ID        int64
	UserID    int64
	ProjectID int64
	Verb      string
	ContentID *int64
	Result    *float64
	Timestamp time.Time
	CreatedAt time.Time
}
