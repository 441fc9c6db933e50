package surface

import (
	"context"
	"strings"

	"github.com/xkubaj03/tennis-club/internal/apperr"
)

type Service interface {
	Create(ctx context.Context, req CreateSurfaceRequest) (*CourtSurface, error)
	GetByID(ctx context.Context, id int64) (*CourtSurface, error)
	GetAll(ctx context.Context) ([]CourtSurface, error)
	Update(ctx context.Context, id int64, req CreateSurfaceRequest) (*CourtSurface, error)
	DeleteByID(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateSurface(req CreateSurfaceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperr.InvalidArgumentf("surface name is required")
	}
	if req.CostPerMinuteCents <= 0 {
		return apperr.InvalidArgumentf("cost per minute must be positive")
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateSurfaceRequest) (*CourtSurface, error) {
	if err := validateSurface(req); err != nil {
		return nil, err
	}

	entity := &CourtSurface{
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		CostPerMinuteCents: req.CostPerMinuteCents,
		Active:             true,
	}
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*CourtSurface, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.NotFoundf("court surface with id %d", id)
	}
	return entity, nil
}

func (s *service) GetAll(ctx context.Context) ([]CourtSurface, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req CreateSurfaceRequest) (*CourtSurface, error) {
	if err := validateSurface(req); err != nil {
		return nil, err
	}

	entity, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = strings.TrimSpace(req.Name)
	entity.Description = req.Description
	entity.CostPerMinuteCents = req.CostPerMinuteCents

	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
