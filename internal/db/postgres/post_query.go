package postgres

import (
	"Postboard/internal/core/posts"

	"gorm.io/gorm"
)

// PostFilter narrows the post view aggregate
// A nil Limit means no limit; an empty Search matches every title
type PostFilter struct {
	PostID *int64
	Limit  *int
	Search string
	Offset int
}

// BuildPostViewQuery builds the vote-count aggregate joined to the author's display name
//
//	SELECT p.*, CONCAT(users.first_name, ' ', users.last_name) AS author_name
//	FROM (SELECT posts.*, COUNT(votes.post_id) AS votes
//	      FROM posts LEFT JOIN votes ON votes.post_id = posts.id
//	      WHERE ... GROUP BY posts.id ORDER BY posts.id ASC LIMIT ... OFFSET ...) AS p
//	JOIN users ON users.id = p.author_id
//	ORDER BY p.id ASC
//
// Pagination applies to the grouped posts so a post with many votes still counts once.
// Conditions already chained on db are not carried into the result; only its context and connection are.
func BuildPostViewQuery(db *gorm.DB, f PostFilter) *gorm.DB {
	sub := db.Session(&gorm.Session{NewDB: true}).Model(&posts.Post{}).
		Select("posts.*, COUNT(votes.post_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id")

	if f.PostID != nil {
		sub = sub.Where("posts.id = ?", *f.PostID)
	}
	if f.Search != "" {
		// strpos keeps the match literal and case-sensitive
		sub = sub.Where("strpos(posts.title, ?) > 0", f.Search)
	}

	sub = sub.Group("posts.id").Order("posts.id ASC")

	if f.Limit != nil {
		sub = sub.Limit(*f.Limit)
	}
	if f.Offset > 0 {
		sub = sub.Offset(f.Offset)
	}

	return db.Session(&gorm.Session{NewDB: true}).Table("(?) AS p", sub).
		Select("p.*, CONCAT(users.first_name, ' ', users.last_name) AS author_name").
		Joins("JOIN users ON users.id = p.author_id").
		Order("p.id ASC")
}
