package posts

import (
	"time"
)

// Post represents a row in the posts table
// AuthorID is always taken from the authenticated caller, never from request input
type Post struct {
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null"`
	Title     string    `json:"title" gorm:"column:title;not null"`
	Content   string    `json:"content" gorm:"column:content;not null"`
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	AuthorID  int64     `json:"author_id" gorm:"column:author_id;not null"`
	Published bool      `json:"published" gorm:"column:published;not null"`
}

// TableName binds Post to the posts table
func (Post) TableName() string {
	return "posts"
}

// PostView is a post joined with its vote count and author display name
// Not persisted; computed per query
type PostView struct {
	Post
	AuthorName string `json:"author_name" gorm:"column:author_name"`
	Votes      int64  `json:"votes" gorm:"column:votes"`
}

// PostInput carries the client-writable fields for create and update
type PostInput struct {
	Title     string
	Content   string
	Published bool
}

// ListParams controls filtering and pagination for ListPosts
// A nil Limit means no limit
type ListParams struct {
	Limit  *int
	Search string
	Offset int
}

// CanModify reports whether userID may update or delete post
func CanModify(post *Post, userID int64) bool {
	return post != nil && userID > 0 && post.AuthorID == userID
}
