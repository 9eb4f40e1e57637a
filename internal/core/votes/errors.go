package votes

import (
	"errors"
	"fmt"
)

var (
	// ErrVoteNotFound indicates the caller has no vote on the post
	ErrVoteNotFound = errors.New("vote not found")

	// ErrPostNotFound indicates the post being voted on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidDirection indicates the vote direction is not 0 or 1
	ErrInvalidDirection = errors.New("invalid vote direction: must be 0 or 1")

	// ErrVoteAlreadyExists indicates the caller already voted on the post
	ErrVoteAlreadyExists = errors.New("vote already exists")

	// ErrAuthRequired indicates there is no authenticated caller
	ErrAuthRequired = errors.New("authentication required")
)

// PostNotFoundError identifies the missing post by ID
type PostNotFoundError struct {
	PostID int64
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("post with ID %d does not exist", e.PostID)
}

// Unwrap lets errors.Is(err, ErrPostNotFound) match
func (e *PostNotFoundError) Unwrap() error {
	return ErrPostNotFound
}
