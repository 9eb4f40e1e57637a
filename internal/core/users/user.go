package users

import (
	"time"
)

// User represents an account that can author posts and cast votes
// Password holds the bcrypt hash and is never serialized
type User struct {
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	ID        int64     `json:"id"`
}

// DisplayName is the name shown as a post's author_name
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// CreateUserRequest represents the input for registering a new account
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100,dbtext"`
	LastName  string `json:"last_name" validate:"required,max=100,dbtext"`
}
