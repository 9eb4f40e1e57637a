package votes

import "context"

// Service defines the business logic interface for votes
type Service interface {
	// Vote adds or removes userID's vote on req.PostID depending on req.Dir
	Vote(ctx context.Context, userID int64, req VoteRequest) error
}

// Repository defines the data access interface for votes
type Repository interface {
	// Create inserts a vote
	// Returns ErrVoteAlreadyExists when the user already voted on the post
	// and ErrPostNotFound when the post row is gone
	Create(ctx context.Context, vote *Vote) error

	// Delete removes a vote or returns ErrVoteNotFound
	Delete(ctx context.Context, postID, userID int64) error
}
