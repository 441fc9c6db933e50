package auth

// Role is the closed set of authorization roles. ADMIN implies USER:
// role checks go through Includes, never string equality.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Implied returns every role granted by holding r, including r itself.
func (r Role) Implied() []Role {
	switch r {
	case RoleAdmin:
		return []Role{RoleAdmin, RoleUser}
	case RoleUser:
		return []Role{RoleUser}
	default:
		return nil
	}
}

// Includes reports whether holding r satisfies a requirement for other.
func (r Role) Includes(other Role) bool {
	for _, implied := range r.Implied() {
		if implied == other {
			return true
		}
	}
	return false
}
