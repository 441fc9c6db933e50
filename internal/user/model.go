package user

import "github.com/xkubaj03/tennis-club/internal/auth"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         auth.Role `db:"role" json:"role"`
	Active       bool      `db:"active" json:"-"`
}

func (u *User) Identity() int64      { return u.ID }
func (u *User) SetIdentity(id int64) { u.ID = id }
func (u *User) Deactivate()          { u.Active = false }

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
