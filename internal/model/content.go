package model

import "time"

type Content struct {
	ID          int64
	ProjectID   int64
	Code        string
	Name        string
	Description string
	Kind        string
	URL         *string
	Tags        []string
	CreatedAt   time.Time
}
