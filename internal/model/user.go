package model

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	ID        int64
	Email     string
	Name      string
	Role      Role
	Locked    bool
	CreatedAt time.Time
}
