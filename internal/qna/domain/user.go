package domain

import "time"

type User struct {
	ID        string
	Username  string
	Admin     bool // Admin users may delete any question or answer
	CreatedAt time.Time
	UpdatedAt time.Time
}
