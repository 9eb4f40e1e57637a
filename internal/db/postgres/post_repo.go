package postgres

import (
	"context"
	"errors"
	"fmt"

	"Postboard/internal/core/posts"

	"gorm.io/gorm"
)

type postgresPostRepo struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *gorm.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// List runs the post view aggregate with the caller's search and pagination
func (r *postgresPostRepo) List(ctx context.Context, params posts.ListParams) ([]*posts.PostView, error) {
	var views []*posts.PostView

	query := BuildPostViewQuery(r.db.WithContext(ctx), PostFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
		Search: params.Search,
	})
	if err := query.Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return views, nil
}

// GetView runs the post view aggregate for a single post
func (r *postgresPostRepo) GetView(ctx context.Context, id int64) (*posts.PostView, error) {
	var views []*posts.PostView

	query := BuildPostViewQuery(r.db.WithContext(ctx), PostFilter{PostID: &id})
	if err := query.Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}
	if len(views) == 0 {
		return nil, posts.ErrNotFound
	}

	return views[0], nil
}

// GetByID retrieves the bare post row
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	var post posts.Post

	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// Create inserts a new post; ID and CreatedAt are filled in from the insert
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return fmt.Errorf("author %d does not exist: %w", post.AuthorID, err)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// Update overwrites the client-writable fields and returns the stored row
func (r *postgresPostRepo) Update(ctx context.Context, id int64, input posts.PostInput) (*posts.Post, error) {
	var updated posts.Post

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A map so that false and "" are written instead of skipped as zero values
		result := tx.Model(&posts.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":     input.Title,
			"content":   input.Content,
			"published": input.Published,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return posts.ErrNotFound
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, posts.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &updated, nil
}

// Delete removes a post; its votes go with it through ON DELETE CASCADE
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&posts.Post{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return posts.ErrNotFound
	}
	return nil
}
