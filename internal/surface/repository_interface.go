package surface

import "context"

type Repository interface {
	Save(ctx context.Context, s *CourtSurface) error
	FindByID(ctx context.Context, id int64) (*CourtSurface, error)
	FindAll(ctx context.Context) ([]CourtSurface, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
