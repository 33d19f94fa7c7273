package dto

import (
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is returned on registration, before an avatar can exist.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type RegisterResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token,omitempty"`
}

type LoginResponse struct {
	User  *md.User `json:"user"`
	Token string   `json:"token,omitempty"`
}

type BiometricsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type BiometricsResponse struct {
	Enabled bool `json:"enabled"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

type AvatarResponse struct {
	Avatar string `json:"avatar"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
