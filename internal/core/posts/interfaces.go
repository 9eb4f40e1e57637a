package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// ListPosts returns posts with vote counts and author names, ordered by ID ascending
	ListPosts(ctx context.Context, params ListParams) ([]*PostView, error)

	// GetPost returns a single post with its vote count and author name
	GetPost(ctx context.Context, postID int64) (*PostView, error)

	// CreatePost creates a post owned by userID
	CreatePost(ctx context.Context, userID int64, input PostInput) (*Post, error)

	// UpdatePost overwrites a post's fields; only the author may do this
	UpdatePost(ctx context.Context, userID, postID int64, input PostInput) (*Post, error)

	// DeletePost removes a post; only the author may do this
	DeletePost(ctx context.Context, userID, postID int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// List runs the vote-count aggregate over all matching posts
	List(ctx context.Context, params ListParams) ([]*PostView, error)

	// GetView runs the vote-count aggregate for one post
	// Returns ErrNotFound if no row matches
	GetView(ctx context.Context, id int64) (*PostView, error)

	// GetByID returns the bare post row or ErrNotFound
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Create inserts post and populates its ID and CreatedAt
	Create(ctx context.Context, post *Post) error

	// Update overwrites title, content and published and returns the stored row
	Update(ctx context.Context, id int64, input PostInput) (*Post, error)

	// Delete removes the post or returns ErrNotFound
	Delete(ctx context.Context, id int64) error
}
