package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	// Create inserts user and populates its ID and CreatedAt
	// Returns ErrEmailTaken on a duplicate email
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)

	// Authenticate checks an email and password pair
	// Unknown emails and wrong passwords both return ErrInvalidCredentials
	Authenticate(ctx context.Context, email, password string) (*User, error)
}
