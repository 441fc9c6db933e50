package reservation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/xkubaj03/tennis-club/internal/apperr"
	"github.com/xkubaj03/tennis-club/internal/court"
	"github.com/xkubaj03/tennis-club/internal/customer"
	"github.com/xkubaj03/tennis-club/internal/lock"
	"github.com/xkubaj03/tennis-club/internal/logger"
	"github.com/xkubaj03/tennis-club/internal/metrics"
	"github.com/xkubaj03/tennis-club/internal/pricing"
)

// Per-court lock parameters. The TTL is a liveness bound, not the hold
// time; the lock is released as soon as the booking commits or fails.
const (
	lockTTL        = 5 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond
)

type Service interface {
	Create(ctx context.Context, req CreateReservationRequest) (*ReservationDetail, error)
	Update(ctx context.Context, id int64, req CreateReservationRequest) (*ReservationDetail, error)
	GetByID(ctx context.Context, id int64) (*ReservationDetail, error)
	GetAll(ctx context.Context) ([]ReservationDetail, error)
	GetByCourtNumber(ctx context.Context, courtNumber int) ([]ReservationDetail, error)
	GetByCustomerPhone(ctx context.Context, phone string, futureOnly bool) ([]ReservationDetail, error)
	DeleteByID(ctx context.Context, id int64) error
}

type service struct {
	repo    Repository
	courts  court.Repository
	checker *AvailabilityChecker
	locks   *lock.Manager
}

func NewService(repo Repository, courts court.Repository, locks *lock.Manager) Service {
	return &service{
		repo:    repo,
		courts:  courts,
		checker: NewAvailabilityChecker(repo),
		locks:   locks,
	}
}

// parsedRequest is a validated CreateReservationRequest with the times
// parsed and the target court resolved.
type parsedRequest struct {
	court *court.Court
	start time.Time
	end   time.Time
}

func (s *service) validate(ctx context.Context, req CreateReservationRequest) (*parsedRequest, error) {
	if err := customer.ValidatePhone(req.PhoneNumber); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, apperr.InvalidArgumentf("customer name must not be empty")
	}
	if !req.GameType.Valid() {
		return nil, apperr.InvalidArgumentf("game type must be SINGLES or DOUBLES")
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, apperr.InvalidArgumentf("start_time must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, apperr.InvalidArgumentf("end_time must be RFC3339")
	}

	if !start.Before(end) {
		return nil, apperr.InvalidArgumentf("start time must be before end time")
	}
	duration := end.Sub(start)
	if duration < MinDuration || duration > MaxDuration {
		return nil, apperr.InvalidArgumentf("reservation must last between 30 minutes and 24 hours")
	}
	if !start.After(time.Now()) {
		return nil, apperr.InvalidArgumentf("start time must be in the future")
	}

	c, err := s.courts.FindByNumber(ctx, req.CourtNumber)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFoundf("court %d not found", req.CourtNumber)
	}

	return &parsedRequest{court: c, start: start, end: end}, nil
}

// book runs the guarded check-then-act sequence shared by create and
// update: take the per-court lock, verify availability, persist. The
// database exclusion constraint still catches anything that slips
// through, e.g. when Redis is flushed mid-flight.
func (s *service) book(ctx context.Context, req CreateReservationRequest, p *parsedRequest, res *Reservation) (*ReservationDetail, error) {
	key := "court:" + strconv.FormatInt(p.court.ID, 10)
	l, err := s.locks.AcquireWithRetry(ctx, key, lockTTL, lockMaxRetries, lockRetryDelay)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			metrics.RecordCourtLockContention()
			return nil, apperr.Conflictf("court %d is being booked, try again", p.court.CourtNumber)
		}
		return nil, err
	}
	defer func() {
		if err := l.Release(context.WithoutCancel(ctx)); err != nil {
			logger.Error("failed to release court lock", "key", key, "error", err)
		}
	}()

	var excludeID *int64
	if res.ID != 0 {
		excludeID = &res.ID
	}
	available, err := s.checker.IsAvailable(ctx, p.court.ID, p.start, p.end, excludeID)
	if err != nil {
		return nil, err
	}
	if !available {
		metrics.RecordReservationConflict()
		return nil, apperr.Conflictf("reservation already exists for this court and time")
	}

	res.CourtID = p.court.ID
	res.GameType = req.GameType
	res.StartTime = p.start
	res.EndTime = p.end
	res.Active = true

	if err := s.repo.SaveWithCustomer(ctx, req.PhoneNumber, req.CustomerName, res); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			metrics.RecordReservationConflict()
		}
		return nil, err
	}

	return s.detail(ctx, res.ID)
}

func (s *service) Create(ctx context.Context, req CreateReservationRequest) (*ReservationDetail, error) {
	p, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &Reservation{CreatedAt: time.Now().UTC()}
	detail, err := s.book(ctx, req, p, res)
	if err != nil {
		return nil, err
	}

	metrics.RecordReservation(string(req.GameType))
	logger.Info("reservation created",
		"reservation_id", detail.ID,
		"court_number", detail.CourtNumber,
		"game_type", string(detail.GameType))

	return detail, nil
}

func (s *service) Update(ctx context.Context, id int64, req CreateReservationRequest) (*ReservationDetail, error) {
	if id <= 0 {
		return nil, apperr.InvalidArgumentf("id must be positive")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFoundf("reservation %d not found", id)
	}

	p, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	// Reuse the identity and original creation timestamp; everything
	// else comes from the request.
	res := &Reservation{ID: existing.ID, CreatedAt: existing.CreatedAt}
	detail, err := s.book(ctx, req, p, res)
	if err != nil {
		return nil, err
	}

	logger.Info("reservation updated", "reservation_id", detail.ID)
	return detail, nil
}

func (s *service) detail(ctx context.Context, id int64) (*ReservationDetail, error) {
	d, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFoundf("reservation %d not found", id)
	}
	s.price(d)
	return d, nil
}

// price fills the computed price fields from the court's current
// surface rate.
func (s *service) price(d *ReservationDetail) {
	d.TotalPriceCents = pricing.Calculate(d.StartTime, d.EndTime,
		pricing.Cents(d.CostPerMinuteCents), d.GameType.PriceMultiplier())
	d.TotalPrice = d.TotalPriceCents.String()
}

func (s *service) priceAll(details []ReservationDetail) []ReservationDetail {
	for i := range details {
		s.price(&details[i])
	}
	return details
}

func (s *service) GetByID(ctx context.Context, id int64) (*ReservationDetail, error) {
	if id <= 0 {
		return nil, apperr.InvalidArgumentf("id must be positive")
	}
	return s.detail(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]ReservationDetail, error) {
	details, err := s.repo.FindAllDetails(ctx)
	if err != nil {
		return nil, err
	}
	return s.priceAll(details), nil
}

func (s *service) GetByCourtNumber(ctx context.Context, courtNumber int) ([]ReservationDetail, error) {
	if courtNumber <= 0 {
		return nil, apperr.InvalidArgumentf("court number must be positive")
	}
	details, err := s.repo.FindByCourtNumber(ctx, courtNumber)
	if err != nil {
		return nil, err
	}
	return s.priceAll(details), nil
}

func (s *service) GetByCustomerPhone(ctx context.Context, phone string, futureOnly bool) ([]ReservationDetail, error) {
	if err := customer.ValidatePhone(phone); err != nil {
		return nil, err
	}
	details, err := s.repo.FindByCustomerPhone(ctx, phone, futureOnly)
	if err != nil {
		return nil, err
	}
	return s.priceAll(details), nil
}

func (s *service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	metrics.RecordReservationCancellation()
	logger.Info("reservation cancelled", "reservation_id", id)
	return nil
}
