package customer

import (
	"regexp"
	"strings"

	"github.com/xkubaj03/tennis-club/internal/apperr"
)

// Customer is looked up and de-duplicated by phone number, not by id.
type Customer struct {
	ID          int64  `db:"id" json:"id"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
	Name        string `db:"customer_name" json:"name"`
	Active      bool   `db:"active" json:"-"`
}

func (c *Customer) Identity() int64      { return c.ID }
func (c *Customer) SetIdentity(id int64) { c.ID = id }
func (c *Customer) Deactivate()          { c.Active = false }

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// NormalizePhone trims surrounding whitespace; the digits themselves
// are stored as given.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// ValidatePhone accepts 7-15 digits with an optional leading plus.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(NormalizePhone(phone)) {
		return apperr.InvalidArgumentf("invalid phone number format")
	}
	return nil
}
