package court

import "context"

type Repository interface {
	Save(ctx context.Context, c *Court) error
	FindByID(ctx context.Context, id int64) (*Court, error)
	FindByNumber(ctx context.Context, courtNumber int) (*Court, error)
	FindAll(ctx context.Context) ([]CourtWithSurface, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
