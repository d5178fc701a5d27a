// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Venue is the core entity for a trivia-night venue scraped from external sources.
// A venue with a non-nil DeletedAt is not a live venue: it was either removed
// upstream or absorbed into another venue by a merge.
type Venue struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"` // URL identifier, unique among live venues.
	Address      string     `json:"address"`
	Postcode     string     `json:"postcode,omitempty"`
	CityID       uuid.UUID  `json:"city_id"`
	City         *City      `json:"city,omitempty"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Website      string     `json:"website,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Facebook     string     `json:"facebook,omitempty"`
	Instagram    string     `json:"instagram,omitempty"`
	Description  string     `json:"description,omitempty"`
	Images       []*VenueImage `json:"images,omitempty"`
	MergedIntoID *uuid.UUID `json:"merged_into_id,omitempty"` // Set when this venue was absorbed by a merge.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// HasCoordinates reports whether the venue carries a usable geolocation.
func (v *Venue) HasCoordinates() bool {
	return v.Latitude != 0 || v.Longitude != 0
}

// IsLive reports whether the venue is visible to the directory (not soft-deleted).
func (v *Venue) IsLive() bool {
	return v.DeletedAt == nil
}

// City is a directory city grouping venues.
type City struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// VenueImage is an externally fetched image attached to a venue.
// SourceURL is the stable identity used to de-duplicate images across merges.
type VenueImage struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venue_id"`
	SourceURL string    `json:"source_url"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
	Position  int       `json:"position"`
}
