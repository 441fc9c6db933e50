package customer

import "context"

type Repository interface {
	Save(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
