package dto

import (
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/google/uuid"
)

type CreateAttractionRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Image       string   `json:"image"`
	Latitude    *float64 `json:"latitude"    validate:"required"`
	Longitude   *float64 `json:"longitude"   validate:"required"`
}

type CreateAttractionResponse struct {
	ID uuid.UUID `json:"id"`
}

type DeleteAttractionsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// AttractionFilters narrows the attraction list. The zero value lists
// everything without distances.
type AttractionFilters struct {
	Category    string
	Query       string
	Latitude    *float64
	Longitude   *float64
	MaxDistance float64
}

type AttractionResponse struct {
	md.Attraction
	Distance *float64 `json:"distance,omitempty"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
