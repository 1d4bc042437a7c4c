// Package model defines domain entities for the application.
package model

import "time"

// UserStatus represents the lifecycle status of a user account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// IsValid checks if the status is a known value.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User represents a registered user account.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsActive returns true if the account is active.
func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}
