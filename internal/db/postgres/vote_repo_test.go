package postgres

import (
	"context"
	"testing"

	"Postboard/internal/core/votes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRepo_CreateAndDelete(t *testing.T) {
	db, gdb := setupTestDB(t)
	ctx := context.Background()
	voter := createTestUser(t, db, "Ada", "Lovelace")
	post := createTestPost(t, gdb, voter.ID, "Vote on me")

	repo := NewVoteRepository(gdb)

	require.NoError(t, repo.Create(ctx, &votes.Vote{PostID: post.ID, UserID: voter.ID}))
	assert.ErrorIs(t, repo.Create(ctx, &votes.Vote{PostID: post.ID, UserID: voter.ID}), votes.ErrVoteAlreadyExists)

	require.NoError(t, repo.Delete(ctx, post.ID, voter.ID))
	assert.ErrorIs(t, repo.Delete(ctx, post.ID, voter.ID), votes.ErrVoteNotFound)
}

func TestVoteRepo_MissingPost(t *testing.T) {
	db, gdb := setupTestDB(t)
	voter := createTestUser(t, db, "Ada", "Lovelace")

	err := NewVoteRepository(gdb).Create(context.Background(), &votes.Vote{PostID: 12345, UserID: voter.ID})
	assert.ErrorIs(t, err, votes.ErrPostNotFound)
}
