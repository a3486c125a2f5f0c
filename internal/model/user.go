package model

import (
	"database/sql"
	"time"
)

type User struct {
	ID           string         `db:"id" json:"id"`
	Username     string         `db:"username" json:"username"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	DisplayName  sql.NullString `db:"display_name" json:"display_name,omitempty"`
	IsAdmin      bool           `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// GetDisplayName returns display_name or username as fallback
func (u *User) GetDisplayName() string {
	if u.DisplayName.Valid && u.DisplayName.String != "" {
		return u.DisplayName.String
	}
	return u.Username
}

// Identity returns the caller identity for this user
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, IsAdmin: u.IsAdmin}
}

// UserProfile is a public-facing user profile
type UserProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// ToProfile converts User to UserProfile
func (u *User) ToProfile() *UserProfile {
	return &UserProfile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.GetDisplayName(),
		IsAdmin:     u.IsAdmin,
	}
}
