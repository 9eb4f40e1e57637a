package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{
		repo: repo,
	}
}

// ListPosts returns the vote-count aggregate for posts whose title contains params.Search
func (s *postService) ListPosts(ctx context.Context, params ListParams) ([]*PostView, error) {
	if params.Limit != nil && *params.Limit < 0 {
		return nil, NewValidationError("limit", "must not be negative")
	}
	if params.Offset < 0 {
		return nil, NewValidationError("offset", "must not be negative")
	}

	views, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if views == nil {
		views = []*PostView{}
	}
	return views, nil
}

// GetPost returns a single post view or a NotFoundError carrying postID
func (s *postService) GetPost(ctx context.Context, postID int64) (*PostView, error) {
	view, err := s.repo.GetView(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewNotFoundError(postID)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return view, nil
}

// CreatePost persists a new post authored by userID
func (s *postService) CreatePost(ctx context.Context, userID int64, input PostInput) (*Post, error) {
	if userID <= 0 {
		return nil, ErrAuthRequired
	}

	post := &Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: input.Published,
		AuthorID:  userID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	slog.Info("[POST-CREATE] post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", userID),
	)
	return post, nil
}

// UpdatePost overwrites the post's fields after the existence and ownership checks
func (s *postService) UpdatePost(ctx context.Context, userID, postID int64, input PostInput) (*Post, error) {
	if _, err := s.authorize(ctx, userID, postID); err != nil {
		return nil, err
	}

	post, err := s.repo.Update(ctx, postID, input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewNotFoundError(postID)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost removes the post after the existence and ownership checks
func (s *postService) DeletePost(ctx context.Context, userID, postID int64) error {
	if _, err := s.authorize(ctx, userID, postID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewNotFoundError(postID)
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	slog.Info("[POST-DELETE] post deleted",
		slog.Int64("post_id", postID),
		slog.Int64("author_id", userID),
	)
	return nil
}

// authorize loads the post and applies CanModify
// Existence is checked before ownership
func (s *postService) authorize(ctx context.Context, userID, postID int64) (*Post, error) {
	if userID <= 0 {
		return nil, ErrAuthRequired
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewNotFoundError(postID)
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	if !CanModify(post, userID) {
		slog.Warn("[POST-AUTHZ] ownership check failed",
			slog.Int64("post_id", postID),
			slog.Int64("author_id", post.AuthorID),
			slog.Int64("user_id", userID),
		)
		return nil, ErrForbidden
	}
	return post, nil
}
