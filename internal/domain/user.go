package domain

import (
	"context"
	"time"
)

// User represents a registered user of the blog.
type User struct {
	ID           int64
	Name         string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByAddress(ctx context.Context, address string) (*User, error)
	// ListAddresses returns every registered address. The access guard
	// re-queries this on each guarded request rather than trusting the
	// session, so stale sessions for removed users are denied.
	ListAddresses(ctx context.Context) ([]string, error)
}
