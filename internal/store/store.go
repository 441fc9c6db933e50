// Package store provides the generic soft-delete persistence primitive
// shared by every entity kind. Rows are never removed: Delete flips the
// active flag and the row becomes invisible to every read in this
// package. There is no escape hatch to see inactive rows.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/xkubaj03/tennis-club/internal/apperr"
)

// Entity is the capability contract a stored type satisfies: an int64
// identity (zero means unassigned) and a soft-delete switch.
type Entity interface {
	Identity() int64
	SetIdentity(int64)
	Deactivate()
}

// EntityPtr ties the Entity capabilities to a pointer of the concrete
// entity type, so nil checks and mutation both work.
type EntityPtr[E any] interface {
	*E
	Entity
}

// Store implements uniform CRUD with soft-delete semantics over one
// table. Column metadata is supplied at construction; the id column is
// implicit and the column list must include "active".
type Store[E any, PE EntityPtr[E]] struct {
	ext   sqlx.ExtContext
	table string

	insertQuery string
	updateQuery string
	findQuery   string
	listQuery   string
	existsQuery string
	countQuery  string
}

func New[E any, PE EntityPtr[E]](db *sqlx.DB, table string, cols []string) *Store[E, PE] {
	named := make([]string, len(cols))
	sets := make([]string, len(cols))
	for i, c := range cols {
		named[i] = ":" + c
		sets[i] = c + " = :" + c
	}
	selectList := "id, " + strings.Join(cols, ", ")

	return &Store[E, PE]{
		ext:   db,
		table: table,
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			table, strings.Join(cols, ", "), strings.Join(named, ", ")),
		updateQuery: fmt.Sprintf("UPDATE %s SET %s WHERE id = :id",
			table, strings.Join(sets, ", ")),
		findQuery: fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND active = TRUE",
			selectList, table),
		listQuery: fmt.Sprintf("SELECT %s FROM %s WHERE active = TRUE",
			selectList, table),
		existsQuery: fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1 AND active = TRUE)",
			table),
		countQuery: fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE active = TRUE",
			table),
	}
}

// WithTx returns a view of the store bound to an open transaction, so a
// save can share atomicity with other writes.
func (s *Store[E, PE]) WithTx(tx *sqlx.Tx) *Store[E, PE] {
	clone := *s
	clone.ext = tx
	return &clone
}

// Save inserts the entity and assigns its identity when none is set,
// otherwise updates the row in place. Updating a missing row is
// NotFound, not an insert.
func (s *Store[E, PE]) Save(ctx context.Context, e PE) error {
	if e == nil {
		return apperr.InvalidArgumentf("%s: entity cannot be nil", s.table)
	}

	if e.Identity() == 0 {
		query, args, err := s.ext.BindNamed(s.insertQuery, e)
		if err != nil {
			return apperr.FromStorage(err)
		}
		var id int64
		if err := sqlx.GetContext(ctx, s.ext, &id, query, args...); err != nil {
			return apperr.FromStorage(err)
		}
		e.SetIdentity(id)
		return nil
	}

	query, args, err := s.ext.BindNamed(s.updateQuery, e)
	if err != nil {
		return apperr.FromStorage(err)
	}
	res, err := s.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return apperr.FromStorage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.FromStorage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("%s id %d", s.table, e.Identity())
	}
	return nil
}

// FindByID returns the entity only when it exists and is active. An
// absent or unassigned id yields (nil, nil), not an error.
func (s *Store[E, PE]) FindByID(ctx context.Context, id int64) (PE, error) {
	var zero PE
	if id <= 0 {
		return zero, nil
	}
	var e E
	err := sqlx.GetContext(ctx, s.ext, &e, s.findQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, nil
	}
	if err != nil {
		return zero, apperr.FromStorage(err)
	}
	return &e, nil
}

// FindAll returns every active entity. Order is unspecified; concrete
// repositories add ordered finders where callers need one.
func (s *Store[E, PE]) FindAll(ctx context.Context) ([]E, error) {
	var out []E
	if err := sqlx.SelectContext(ctx, s.ext, &out, s.listQuery); err != nil {
		return nil, apperr.FromStorage(err)
	}
	return out, nil
}

// Delete soft-deletes the given entity. Deleting something that is
// already gone is NotFound, never a silent no-op.
func (s *Store[E, PE]) Delete(ctx context.Context, e PE) error {
	if e == nil {
		return apperr.InvalidArgumentf("%s: entity cannot be nil", s.table)
	}
	return s.DeleteByID(ctx, e.Identity())
}

// DeleteByID soft-deletes by identity with the same semantics as Delete.
func (s *Store[E, PE]) DeleteByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.InvalidArgumentf("%s: id must be positive", s.table)
	}
	e, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return apperr.NotFoundf("%s id %d", s.table, id)
	}
	e.Deactivate()
	return s.Save(ctx, e)
}

// ExistsByID reports whether an active entity with the id exists.
func (s *Store[E, PE]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	var exists bool
	if err := sqlx.GetContext(ctx, s.ext, &exists, s.existsQuery, id); err != nil {
		return false, apperr.FromStorage(err)
	}
	return exists, nil
}

// Count returns the number of active entities.
func (s *Store[E, PE]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, s.ext, &n, s.countQuery); err != nil {
		return 0, apperr.FromStorage(err)
	}
	return n, nil
}
