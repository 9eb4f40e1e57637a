package postgres

import (
	"context"
	"fmt"

	"Postboard/internal/core/votes"

	"gorm.io/gorm"
)

type postgresVoteRepo struct {
	db *gorm.DB
}

// NewVoteRepository creates a new PostgreSQL vote repository
func NewVoteRepository(db *gorm.DB) votes.Repository {
	return &postgresVoteRepo{db: db}
}

// Create inserts a vote
// The (post_id, user_id) primary key rejects a second vote by the same user
func (r *postgresVoteRepo) Create(ctx context.Context, vote *votes.Vote) error {
	err := r.db.WithContext(ctx).Create(vote).Error
	if err == nil {
		return nil
	}

	switch pqErrorCode(err) {
	case pqUniqueViolation:
		return votes.ErrVoteAlreadyExists
	case pqForeignKeyViolation:
		return votes.ErrPostNotFound
	}
	return fmt.Errorf("failed to insert vote: %w", err)
}

// Delete removes the user's vote on the post
func (r *postgresVoteRepo) Delete(ctx context.Context, postID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&votes.Vote{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return votes.ErrVoteNotFound
	}
	return nil
}
