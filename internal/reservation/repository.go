package reservation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/customer"
	"github.com/xkubaj03/tennis-club/internal/store"
)

var columns = []string{"court_id", "customer_id", "game_type", "start_time", "end_time", "created_at", "active"}

// detailSelect joins the reservation with court, customer and the
// court's *current* surface; the rate rides along so the service can
// price each row at read time.
const detailSelect = `
	SELECT
		r.id,
		r.court_id,
		r.customer_id,
		r.game_type,
		r.start_time,
		r.end_time,
		r.created_at,
		r.active,
		c.court_number,
		cu.phone_number,
		cu.customer_name,
		s.cost_per_minute_cents
	FROM reservations r
	JOIN courts c ON r.court_id = c.id
	JOIN customers cu ON r.customer_id = cu.id
	JOIN court_surfaces s ON c.surface_id = s.id
	WHERE r.active = TRUE`

type repository struct {
	db    *sqlx.DB
	store *store.Store[Reservation, *Reservation]
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db:    db,
		store: store.New[Reservation](db, "reservations", columns),
	}
}

func (r *repository) Save(ctx context.Context, res *Reservation) error {
	return r.store.Save(ctx, res)
}

// SaveWithCustomer keeps the customer lookup/insert and the reservation
// write in one transaction, so a failed reservation never leaves a
// half-created customer behind. An overlapping insert that slipped past
// the availability check aborts here on the exclusion constraint and
// comes back as Conflict.
func (r *repository) SaveWithCustomer(ctx context.Context, phone, name string, res *Reservation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.FromStorage(err)
	}
	defer tx.Rollback()

	phone = customer.NormalizePhone(phone)

	var customerID int64
	err = tx.GetContext(ctx, &customerID,
		`SELECT id FROM customers WHERE phone_number = $1 AND active = TRUE`, phone)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.GetContext(ctx, &customerID,
			`INSERT INTO customers (phone_number, customer_name, active)
			 VALUES ($1, $2, TRUE)
			 RETURNING id`,
			phone, name)
	}
	if err != nil {
		return apperr.FromStorage(err)
	}

	res.CustomerID = customerID
	if err := r.store.WithTx(tx).Save(ctx, res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperr.FromStorage(err)
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Reservation, error) {
	return r.store.FindByID(ctx, id)
}

func (r *repository) FindActiveByCourt(ctx context.Context, courtID int64) ([]Reservation, error) {
	query := `
		SELECT id, court_id, customer_id, game_type, start_time, end_time, created_at, active
		FROM reservations
		WHERE court_id = $1 AND active = TRUE
	`

	var reservations []Reservation
	if err := r.db.SelectContext(ctx, &reservations, query, courtID); err != nil {
		return nil, apperr.FromStorage(err)
	}

	return reservations, nil
}

func (r *repository) FindDetailByID(ctx context.Context, id int64) (*ReservationDetail, error) {
	query := detailSelect + ` AND r.id = $1`

	var detail ReservationDetail
	err := r.db.GetContext(ctx, &detail, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}

	return &detail, nil
}

func (r *repository) FindAllDetails(ctx context.Context) ([]ReservationDetail, error) {
	query := detailSelect + ` ORDER BY r.created_at ASC`

	var details []ReservationDetail
	if err := r.db.SelectContext(ctx, &details, query); err != nil {
		return nil, apperr.FromStorage(err)
	}

	return details, nil
}

// FindByCourtNumber restricts the join to the active court. Court
// numbers are only unique among active courts, so without the filter a
// retired court and its replacement would share one listing.
func (r *repository) FindByCourtNumber(ctx context.Context, courtNumber int) ([]ReservationDetail, error) {
	query := detailSelect + ` AND c.court_number = $1 AND c.active = TRUE ORDER BY r.created_at ASC`

	var details []ReservationDetail
	if err := r.db.SelectContext(ctx, &details, query, courtNumber); err != nil {
		return nil, apperr.FromStorage(err)
	}

	return details, nil
}

func (r *repository) FindByCustomerPhone(ctx context.Context, phone string, futureOnly bool) ([]ReservationDetail, error) {
	query := detailSelect + ` AND cu.phone_number = $1`
	if futureOnly {
		query += ` AND r.start_time > NOW()`
	}
	query += ` ORDER BY r.start_time ASC`

	var details []ReservationDetail
	if err := r.db.SelectContext(ctx, &details, query, customer.NormalizePhone(phone)); err != nil {
		return nil, apperr.FromStorage(err)
	}

	return details, nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, id)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}
