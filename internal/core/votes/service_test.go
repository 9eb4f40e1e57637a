package votes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) Create(ctx context.Context, vote *Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *mockVoteRepository) Delete(ctx context.Context, postID, userID int64) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func existsValidator(exists bool, err error) SubjectValidator {
	return NewFuncSubjectValidator(func(ctx context.Context, postID int64) (bool, error) {
		return exists, err
	})
}

func TestVote_AddsVote(t *testing.T) {
	repo := new(mockVoteRepository)
	service := NewVoteService(repo, existsValidator(true, nil))
	ctx := context.Background()

	repo.On("Create", ctx, &Vote{PostID: 10, UserID: 1}).Return(nil)

	require.NoError(t, service.Vote(ctx, 1, VoteRequest{PostID: 10, Dir: DirAdd}))
	repo.AssertExpectations(t)
}

func TestVote_RemovesVote(t *testing.T) {
	repo := new(mockVoteRepository)
	service := NewVoteService(repo, existsValidator(true, nil))
	ctx := context.Background()

	repo.On("Delete", ctx, int64(10), int64(1)).Return(nil)

	require.NoError(t, service.Vote(ctx, 1, VoteRequest{PostID: 10, Dir: DirRemove}))
	repo.AssertExpectations(t)
}

func TestVote_Errors(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		req       VoteRequest
		validator SubjectValidator
		setup     func(repo *mockVoteRepository)
		wantErr   error
	}{
		{
			name:      "unauthenticated",
			userID:    0,
			req:       VoteRequest{PostID: 1, Dir: DirAdd},
			validator: existsValidator(true, nil),
			wantErr:   ErrAuthRequired,
		},
		{
			name:      "invalid direction",
			userID:    1,
			req:       VoteRequest{PostID: 1, Dir: 2},
			validator: existsValidator(true, nil),
			wantErr:   ErrInvalidDirection,
		},
		{
			name:      "post does not exist",
			userID:    1,
			req:       VoteRequest{PostID: 404, Dir: DirAdd},
			validator: existsValidator(false, nil),
			wantErr:   ErrPostNotFound,
		},
		{
			name:      "already voted",
			userID:    1,
			req:       VoteRequest{PostID: 1, Dir: DirAdd},
			validator: existsValidator(true, nil),
			setup: func(repo *mockVoteRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(ErrVoteAlreadyExists)
			},
			wantErr: ErrVoteAlreadyExists,
		},
		{
			name:      "post deleted between check and insert",
			userID:    1,
			req:       VoteRequest{PostID: 1, Dir: DirAdd},
			validator: existsValidator(true, nil),
			setup: func(repo *mockVoteRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(ErrPostNotFound)
			},
			wantErr: ErrPostNotFound,
		},
		{
			name:      "removing a missing vote",
			userID:    1,
			req:       VoteRequest{PostID: 1, Dir: DirRemove},
			validator: existsValidator(true, nil),
			setup: func(repo *mockVoteRepository) {
				repo.On("Delete", mock.Anything, int64(1), int64(1)).Return(ErrVoteNotFound)
			},
			wantErr: ErrVoteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockVoteRepository)
			if tt.setup != nil {
				tt.setup(repo)
			}
			service := NewVoteService(repo, tt.validator)

			err := service.Vote(context.Background(), tt.userID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVote_PostNotFoundMessageCarriesID(t *testing.T) {
	service := NewVoteService(new(mockVoteRepository), existsValidator(false, nil))

	err := service.Vote(context.Background(), 1, VoteRequest{PostID: 77, Dir: DirAdd})

	var nf *PostNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(77), nf.PostID)
	assert.Contains(t, err.Error(), "77")
}

func TestVote_ValidatorFailureIsWrapped(t *testing.T) {
	dbErr := errors.New("timeout")
	service := NewVoteService(new(mockVoteRepository), existsValidator(false, dbErr))

	err := service.Vote(context.Background(), 1, VoteRequest{PostID: 1, Dir: DirAdd})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrPostNotFound)
}

func TestFuncSubjectValidator_NilFuncAllows(t *testing.T) {
	exists, err := NewFuncSubjectValidator(nil).PostExists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
}
