package customer

import (
	"context"

	"github.com/xkubaj03/tennis-club/internal/apperr"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*Customer, error)
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	GetAll(ctx context.Context) ([]Customer, error)
	DeleteByID(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id int64) (*Customer, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.NotFoundf("customer with id %d", id)
	}
	return entity, nil
}

func (s *service) GetByPhone(ctx context.Context, phone string) (*Customer, error) {
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}

	entity, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.NotFoundf("customer with phone number %s", NormalizePhone(phone))
	}
	return entity, nil
}

func (s *service) GetAll(ctx context.Context) ([]Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
