package court

// Court is a bookable physical resource. The surface reference may
// change over the court's lifetime; reservations keep the court
// reference, not a surface snapshot.
type Court struct {
	ID          int64 `db:"id" json:"id"`
	CourtNumber int   `db:"court_number" json:"court_number"`
	SurfaceID   int64 `db:"surface_id" json:"surface_id"`
	Active      bool  `db:"active" json:"-"`
}

func (c *Court) Identity() int64      { return c.ID }
func (c *Court) SetIdentity(id int64) { c.ID = id }
func (c *Court) Deactivate()          { c.Active = false }

// CourtWithSurface is the read model for listings: the court joined
// with its current surface.
type CourtWithSurface struct {
	Court
	SurfaceName        string `db:"surface_name" json:"surface_name"`
	CostPerMinuteCents int64  `db:"cost_per_minute_cents" json:"cost_per_minute_cents"`
}

type CreateCourtRequest struct {
	CourtNumber int   `json:"court_number" binding:"required,min=1"`
	SurfaceID   int64 `json:"surface_id" binding:"required"`
}
