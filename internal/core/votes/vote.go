package votes

import (
	"context"
)

// Vote directions accepted by VoteRequest.Dir
const (
	DirRemove = 0
	DirAdd    = 1
)

// SubjectValidator checks that the post being voted on exists
type SubjectValidator interface {
	PostExists(ctx context.Context, postID int64) (bool, error)
}

// Vote represents one user's endorsement of one post
type Vote struct {
	PostID int64 `json:"post_id" gorm:"column:post_id;primaryKey;autoIncrement:false"`
	UserID int64 `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement:false"`
}

// TableName binds Vote to the votes table
func (Vote) TableName() string {
	return "votes"
}

// VoteRequest adds (Dir = 1) or removes (Dir = 0) the caller's vote on PostID
type VoteRequest struct {
	PostID int64
	Dir    int
}
