package court

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/store"
)

var columns = []string{"court_number", "surface_id", "active"}

type repository struct {
	db    *sqlx.DB
	store *store.Store[Court, *Court]
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db:    db,
		store: store.New[Court](db, "courts", columns),
	}
}

func (r *repository) Save(ctx context.Context, c *Court) error {
	return r.store.Save(ctx, c)
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Court, error) {
	return r.store.FindByID(ctx, id)
}

func (r *repository) FindByNumber(ctx context.Context, courtNumber int) (*Court, error) {
	query := `
		SELECT id, court_number, surface_id, active
		FROM courts
		WHERE court_number = $1 AND active = TRUE
	`

	var c Court
	err := r.db.GetContext(ctx, &c, query, courtNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}

	return &c, nil
}

func (r *repository) FindAll(ctx context.Context) ([]CourtWithSurface, error) {
	query := `
		SELECT
			c.id,
			c.court_number,
			c.surface_id,
			c.active,
			s.surface_name,
			s.cost_per_minute_cents
		FROM courts c
		JOIN court_surfaces s ON c.surface_id = s.id
		WHERE c.active = TRUE
		ORDER BY c.court_number ASC
	`

	var courts []CourtWithSurface
	if err := r.db.SelectContext(ctx, &courts, query); err != nil {
		return nil, apperr.FromStorage(err)
	}

	return courts, nil
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
