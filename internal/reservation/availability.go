package reservation

import (
	"context"
	"time"

	"github.com/xkubaj03/tennis-club/internal/apperr"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Touching endpoints do not
// overlap: a reservation ending at 11:00 leaves 11:00 free.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aEnd.After(bStart) && aStart.Before(bEnd)
}

// AvailabilityChecker decides whether a candidate interval may occupy a
// court. It gives no mutual exclusion on its own; the reservation
// service holds the per-court lock around check-then-act and the
// database exclusion constraint rejects overlapping writes that slip
// through regardless.
type AvailabilityChecker struct {
	repo Repository
}

func NewAvailabilityChecker(repo Repository) *AvailabilityChecker {
	return &AvailabilityChecker{repo: repo}
}

func validateAvailabilityParams(courtID int64, start, end time.Time) error {
	if courtID <= 0 {
		return apperr.InvalidArgumentf("court id is required")
	}
	if start.IsZero() {
		return apperr.InvalidArgumentf("start time is required")
	}
	if end.IsZero() {
		return apperr.InvalidArgumentf("end time is required")
	}
	if !start.Before(end) {
		return apperr.InvalidArgumentf("start time must be before end time")
	}
	return nil
}

// FindOverlapping returns the active reservations on the court whose
// intervals overlap [start, end). When excludeID is set, that
// reservation is removed from consideration first, so an update can be
// re-validated against everything except itself.
func (c *AvailabilityChecker) FindOverlapping(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]Reservation, error) {
	if err := validateAvailabilityParams(courtID, start, end); err != nil {
		return nil, err
	}

	active, err := c.repo.FindActiveByCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	var overlapping []Reservation
	for _, r := range active {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if Overlaps(r.StartTime, r.EndTime, start, end) {
			overlapping = append(overlapping, r)
		}
	}
	return overlapping, nil
}

// IsAvailable reports whether no active reservation on the court
// overlaps the candidate interval. Invalid parameters are an error,
// never treated as available or unavailable.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) (bool, error) {
	overlapping, err := c.FindOverlapping(ctx, courtID, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}
