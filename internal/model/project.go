package model

import "time"

type Project struct {
	ID          int64
	Code        string
	Name        string
	Description string
	CreatedAt   time.Time
}
