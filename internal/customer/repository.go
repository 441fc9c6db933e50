package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/store"
)

var columns = []string{"phone_number", "customer_name", "active"}

type repository struct {
	db    *sqlx.DB
	store *store.Store[Customer, *Customer]
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db:    db,
		store: store.New[Customer](db, "customers", columns),
	}
}

func (r *repository) Save(ctx context.Context, c *Customer) error {
	return r.store.Save(ctx, c)
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	return r.store.FindByID(ctx, id)
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*Customer, error) {
	query := `
		SELECT id, phone_number, customer_name, active
		FROM customers
		WHERE phone_number = $1 AND active = TRUE
	`

	var c Customer
	err := r.db.GetContext(ctx, &c, query, NormalizePhone(phone))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}

	return &c, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Customer, error) {
	return r.store.FindAll(ctx)
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, id)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}
