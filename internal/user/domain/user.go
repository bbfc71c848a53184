package domain

import (
	"context"
	"errors"
	"time"
)

// User represents the user entity (domain model). The password is stored as
// given and never serialized.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:80;not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"size:120;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:200;not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

var (
	// ErrNotFound is returned when no user exists with the given id
	ErrNotFound = errors.New("user not found")

	// ErrUsernameRequired is returned when a create request carries no username
	ErrUsernameRequired = errors.New("username is required")

	// ErrEmailRequired is returned when a create request carries no email
	ErrEmailRequired = errors.New("email is required")

	// ErrPasswordRequired is returned when a create request carries no password
	ErrPasswordRequired = errors.New("password is required")

	// ErrUsernameTaken is returned when the username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository defines the contract for user data access.
// Delete removes the user and its favorites in a single transaction.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id uint) error
}
