package models

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `db:"id"       json:"id"`
	Email    string    `db:"email"    json:"email"`
	Name     string    `db:"name"     json:"name"`
	Password string    `db:"password" json:"-"`
	Avatar   *string   `db:"avatar"   json:"avatar"`
}

type UserBiometrics struct {
	UserID  uuid.UUID `db:"user_id" json:"userId"`
	Enabled bool      `db:"enabled" json:"enabled"`
}
