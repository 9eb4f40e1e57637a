package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type voteService struct {
	repo      Repository
	validator SubjectValidator
}

// NewVoteService creates a new vote service
func NewVoteService(repo Repository, validator SubjectValidator) Service {
	return &voteService{
		repo:      repo,
		validator: validator,
	}
}

// Vote adds or removes the caller's vote
// Flow: validate direction -> verify post exists -> insert (dir 1) or delete (dir 0)
func (s *voteService) Vote(ctx context.Context, userID int64, req VoteRequest) error {
	if userID <= 0 {
		return ErrAuthRequired
	}
	if req.Dir != DirAdd && req.Dir != DirRemove {
		return ErrInvalidDirection
	}

	exists, err := s.validator.PostExists(ctx, req.PostID)
	if err != nil {
		return fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return &PostNotFoundError{PostID: req.PostID}
	}

	vote := &Vote{PostID: req.PostID, UserID: userID}

	if req.Dir == DirAdd {
		if err := s.repo.Create(ctx, vote); err != nil {
			if errors.Is(err, ErrPostNotFound) {
				return &PostNotFoundError{PostID: req.PostID}
			}
			return err
		}
		slog.Debug("[VOTE] vote added", slog.Int64("post_id", req.PostID), slog.Int64("user_id", userID))
		return nil
	}

	if err := s.repo.Delete(ctx, req.PostID, userID); err != nil {
		return err
	}
	slog.Debug("[VOTE] vote removed", slog.Int64("post_id", req.PostID), slog.Int64("user_id", userID))
	return nil
}
