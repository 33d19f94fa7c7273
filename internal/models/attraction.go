package models

import "github.com/google/uuid"

type Category struct {
	ID   int64  `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

// Attraction is a point of interest as clients see it: Category holds the
// category name, never its id.
type Attraction struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image"       json:"image"`
	Rating      float64   `db:"rating"      json:"rating"`
	Reviews     int       `db:"reviews"     json:"reviews"`
	Category    string    `db:"category"    json:"category"`
	Latitude    float64   `db:"latitude"    json:"latitude"`
	Longitude   float64   `db:"longitude"   json:"longitude"`
}
