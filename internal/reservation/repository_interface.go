package reservation

import "context"

type Repository interface {
	// SaveWithCustomer resolves the customer by phone (creating one if
	// absent) and saves the reservation, all inside one transaction.
	SaveWithCustomer(ctx context.Context, phone, name string, r *Reservation) error

	Save(ctx context.Context, r *Reservation) error
	FindByID(ctx context.Context, id int64) (*Reservation, error)
	FindActiveByCourt(ctx context.Context, courtID int64) ([]Reservation, error)

	FindDetailByID(ctx context.Context, id int64) (*ReservationDetail, error)
	FindAllDetails(ctx context.Context) ([]ReservationDetail, error)
	FindByCourtNumber(ctx context.Context, courtNumber int) ([]ReservationDetail, error)
	FindByCustomerPhone(ctx context.Context, phone string, futureOnly bool) ([]ReservationDetail, error)

	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
