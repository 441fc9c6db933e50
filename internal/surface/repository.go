package surface

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/xkubaj03/tennis-club/internal/store"
)

var columns = []string{"surface_name", "surface_description", "cost_per_minute_cents", "active"}

type repository struct {
	store *store.Store[CourtSurface, *CourtSurface]
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{store: store.New[CourtSurface](db, "court_surfaces", columns)}
}

func (r *repository) Save(ctx context.Context, s *CourtSurface) error {
	return r.store.Save(ctx, s)
}

func (r *repository) FindByID(ctx context.Context, id int64) (*CourtSurface, error) {
	return r.store.FindByID(ctx, id)
}

func (r *repository) FindAll(ctx context.Context) ([]CourtSurface, error) {
	return r.store.FindAll(ctx)
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, id)
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.store.ExistsByID(ctx, id)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}
