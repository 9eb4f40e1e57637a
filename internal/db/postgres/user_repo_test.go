package postgres

import (
	"context"
	"testing"

	"Postboard/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &users.User{Email: "ada@example.com", Password: "hash", FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
	assert.Equal(t, "hash", byID.Password)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &users.User{Email: "dup@example.com", Password: "h", FirstName: "A", LastName: "B"}))

	err := repo.Create(ctx, &users.User{Email: "dup@example.com", Password: "h", FirstName: "C", LastName: "D"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestUserRepo_NotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
