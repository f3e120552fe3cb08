package model

import "time"

type Domain struct {
	ID        int64
	ProjectID int64
	Code      string
	Name      string
	CreatedAt time.Time
}

// Topic belongs to a domain and optionally nests under another topic of the
// same domain.
type Topic struct {
	ID        int64
	DomainID  int64
	ParentID  *int64
	Code      string
	Name      string
	CreatedAt time.Time
}

// KC is a knowledge component of a domain.
type KC struct {
	ID        int64
	DomainID  int64
	Code      string
	Name      string
	CreatedAt time.Time
}
