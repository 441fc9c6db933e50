package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/auth"
)

const testSecret = "test-secret"

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Save(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestRegister(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	repo.On("FindByUsername", mock.Anything, "jane").Return(nil, nil)
	repo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*User).ID = 1 }).
		Return(nil)

	created, access, refresh, err := svc.Register(context.Background(), RegisterRequest{
		Username: " jane ",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jane", created.Username)
	assert.Equal(t, auth.RoleUser, created.Role)
	assert.True(t, auth.CheckPassword(created.PasswordHash, "correct-horse"))
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	repo.On("FindByUsername", mock.Anything, "jane").Return(&User{ID: 1, Username: "jane"}, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterRequest{
		Username: "jane",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, err, apperr.ErrDuplicateKey)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegisterBlankUsername(t *testing.T) {
	svc := NewService(new(MockRepository), testSecret)

	_, _, _, err := svc.Register(context.Background(), RegisterRequest{
		Username: "   ",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(t, err)

	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	repo.On("FindByUsername", mock.Anything, "jane").Return(&User{
		ID:           1,
		Username:     "jane",
		PasswordHash: hash,
		Role:         auth.RoleUser,
		Active:       true,
	}, nil)

	found, access, refresh, err := svc.Login(context.Background(), LoginRequest{
		Username: "jane",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(t, err)

	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	repo.On("FindByUsername", mock.Anything, "jane").Return(&User{
		ID:           1,
		Username:     "jane",
		PasswordHash: hash,
		Role:         auth.RoleUser,
	}, nil)

	_, _, _, err = svc.Login(context.Background(), LoginRequest{
		Username: "jane",
		Password: "wrong-horse",
	})

	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	// Unknown user and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestRefreshToken(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	_, refresh, err := auth.GenerateTokens(1, "jane", auth.RoleUser, testSecret)
	assert.NoError(t, err)

	repo.On("FindByID", mock.Anything, int64(1)).Return(&User{
		ID:       1,
		Username: "jane",
		Role:     auth.RoleUser,
		Active:   true,
	}, nil)

	newAccess, found, err := svc.RefreshToken(context.Background(), refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.Equal(t, int64(1), found.ID)
}

func TestRefreshTokenDeactivatedUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	_, refresh, err := auth.GenerateTokens(1, "jane", auth.RoleUser, testSecret)
	assert.NoError(t, err)

	// Soft-deleted users are invisible to lookups, so the refresh fails.
	repo.On("FindByID", mock.Anything, int64(1)).Return(nil, nil)

	_, _, err = svc.RefreshToken(context.Background(), refresh)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
