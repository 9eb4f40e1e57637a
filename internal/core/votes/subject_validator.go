package votes

import (
	"context"
)

// PostExistsFunc is a function type that checks if a post exists
type PostExistsFunc func(ctx context.Context, postID int64) (bool, error)

// FuncSubjectValidator adapts a PostExistsFunc to SubjectValidator
type FuncSubjectValidator struct {
	postExists PostExistsFunc
}

// NewFuncSubjectValidator creates a validator backed by postExists
// A nil postExists treats every post as existing and leaves the check to the foreign key
func NewFuncSubjectValidator(postExists PostExistsFunc) *FuncSubjectValidator {
	return &FuncSubjectValidator{
		postExists: postExists,
	}
}

// PostExists reports whether postID refers to an existing post
func (v *FuncSubjectValidator) PostExists(ctx context.Context, postID int64) (bool, error) {
	if v.postExists == nil {
		return true, nil
	}
	return v.postExists(ctx, postID)
}
