package court

import (
	"context"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/surface"
)

type Service interface {
	Create(ctx context.Context, req CreateCourtRequest) (*Court, error)
	GetByID(ctx context.Context, id int64) (*Court, error)
	GetByNumber(ctx context.Context, courtNumber int) (*Court, error)
	GetAll(ctx context.Context) ([]CourtWithSurface, error)
	Update(ctx context.Context, id int64, req CreateCourtRequest) (*Court, error)
	DeleteByID(ctx context.Context, id int64) error
}

type service struct {
	repo     Repository
	surfaces surface.Repository
}

func NewService(repo Repository, surfaces surface.Repository) Service {
	return &service{repo: repo, surfaces: surfaces}
}

func (s *service) resolveSurface(ctx context.Context, surfaceID int64) error {
	exists, err := s.surfaces.ExistsByID(ctx, surfaceID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("court surface with id %d", surfaceID)
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	if req.CourtNumber <= 0 {
		return nil, apperr.InvalidArgumentf("court number must be positive")
	}
	if err := s.resolveSurface(ctx, req.SurfaceID); err != nil {
		return nil, err
	}

	entity := &Court{
		CourtNumber: req.CourtNumber,
		SurfaceID:   req.SurfaceID,
		Active:      true,
	}
	// A duplicate court number surfaces as DuplicateKey from the
	// partial unique index on active courts.
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Court, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.NotFoundf("court with id %d", id)
	}
	return entity, nil
}

func (s *service) GetByNumber(ctx context.Context, courtNumber int) (*Court, error) {
	entity, err := s.repo.FindByNumber(ctx, courtNumber)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.NotFoundf("court number %d", courtNumber)
	}
	return entity, nil
}

func (s *service) GetAll(ctx context.Context) ([]CourtWithSurface, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req CreateCourtRequest) (*Court, error) {
	if req.CourtNumber <= 0 {
		return nil, apperr.InvalidArgumentf("court number must be positive")
	}

	entity, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveSurface(ctx, req.SurfaceID); err != nil {
		return nil, err
	}

	entity.CourtNumber = req.CourtNumber
	entity.SurfaceID = req.SurfaceID

	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
