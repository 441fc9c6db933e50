package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/store"
)

var columns = []string{"username", "password_hash", "role", "active"}

type repository struct {
	db    *sqlx.DB
	store *store.Store[User, *User]
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db:    db,
		store: store.New[User](db, "users", columns),
	}
}

func (r *repository) Save(ctx context.Context, u *User) error {
	return r.store.Save(ctx, u)
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	return r.store.FindByID(ctx, id)
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, password_hash, role, active
		FROM users
		WHERE username = $1 AND active = TRUE
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}

	return &u, nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	return r.store.FindAll(ctx)
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, id)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}
