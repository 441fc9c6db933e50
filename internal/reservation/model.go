package reservation

import (
	"time"

	"github.com/xkubaj03/tennis-club/internal/pricing"
)

// GameType is the closed set of playable game kinds.
type GameType string

const (
	GameTypeSingles GameType = "SINGLES"
	GameTypeDoubles GameType = "DOUBLES"
)

func (g GameType) Valid() bool {
	return g == GameTypeSingles || g == GameTypeDoubles
}

// PriceMultiplier returns the game type's contribution to the price:
// doubles costs one and a half times the base rate.
func (g GameType) PriceMultiplier() pricing.Multiplier {
	if g == GameTypeDoubles {
		return pricing.OneAndHalf
	}
	return pricing.Flat
}

// Duration bounds enforced on every create and update.
const (
	MinDuration = 30 * time.Minute
	MaxDuration = 24 * time.Hour
)

// Reservation occupies the half-open interval [StartTime, EndTime) on
// one court. CreatedAt is set once and survives updates.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	CourtID    int64     `db:"court_id" json:"court_id"`
	CustomerID int64     `db:"customer_id" json:"customer_id"`
	GameType   GameType  `db:"game_type" json:"game_type"`
	StartTime  time.Time `db:"start_time" json:"start_time"`
	EndTime    time.Time `db:"end_time" json:"end_time"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	Active     bool      `db:"active" json:"-"`
}

func (r *Reservation) Identity() int64      { return r.ID }
func (r *Reservation) SetIdentity(id int64) { r.ID = id }
func (r *Reservation) Deactivate()          { r.Active = false }

// ReservationDetail is the read model returned to callers: the
// reservation joined with court, customer and the court's current
// surface rate. The price is computed at read time and never stored.
type ReservationDetail struct {
	Reservation
	CourtNumber        int    `db:"court_number" json:"court_number"`
	PhoneNumber        string `db:"phone_number" json:"phone_number"`
	CustomerName       string `db:"customer_name" json:"customer_name"`
	CostPerMinuteCents int64  `db:"cost_per_minute_cents" json:"-"`

	TotalPriceCents pricing.Cents `db:"-" json:"total_price_cents"`
	TotalPrice      string        `db:"-" json:"total_price"`
}

// CreateReservationRequest is shared by create and update; times are
// RFC3339 strings parsed in the service layer.
type CreateReservationRequest struct {
	PhoneNumber  string   `json:"phone_number" binding:"required"`
	CustomerName string   `json:"customer_name" binding:"required"`
	GameType     GameType `json:"game_type" binding:"required"`
	CourtNumber  int      `json:"court_number" binding:"required,min=1"`
	StartTime    string   `json:"start_time" binding:"required"`
	EndTime      string   `json:"end_time" binding:"required"`
}
