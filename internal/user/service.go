package user

import (
	"context"
	"strings"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/auth"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

// Register creates a USER-role account. Admin accounts are provisioned
// operationally, not through this endpoint.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, "", "", apperr.InvalidArgumentf("username is required")
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", "", err
	}
	if existing != nil {
		return nil, "", "", apperr.DuplicateKeyf("username %s already exists", username)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	entity := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         auth.RoleUser,
		Active:       true,
	}
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(entity.ID, entity.Username, entity.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return entity, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	entity, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, "", "", err
	}
	if entity == nil || !auth.CheckPassword(entity.PasswordHash, req.Password) {
		return nil, "", "", apperr.InvalidArgumentf("invalid credentials")
	}

	accessToken, refreshToken, err := auth.GenerateTokens(entity.ID, entity.Username, entity.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return entity, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.NotFoundf("user with id %d", id)
	}
	return entity, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	entity, err := s.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, entity, nil
}
