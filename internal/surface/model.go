package surface

// CourtSurface is a court covering type with a per-minute rate in cents.
type CourtSurface struct {
	ID                 int64   `db:"id" json:"id"`
	Name               string  `db:"surface_name" json:"name"`
	Description        *string `db:"surface_description" json:"description,omitempty"`
	CostPerMinuteCents int64   `db:"cost_per_minute_cents" json:"cost_per_minute_cents"`
	Active             bool    `db:"active" json:"-"`
}

func (s *CourtSurface) Identity() int64      { return s.ID }
func (s *CourtSurface) SetIdentity(id int64) { s.ID = id }
func (s *CourtSurface) Deactivate()          { s.Active = false }

type CreateSurfaceRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        *string `json:"description"`
	CostPerMinuteCents int64   `json:"cost_per_minute_cents" binding:"required,gt=0"`
}
