// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a recurring trivia night hosted at exactly one venue.
type Event struct {
	ID        uuid.UUID      `json:"id"`
	VenueID   uuid.UUID      `json:"venue_id"`
	Name      string         `json:"name,omitempty"`
	DayOfWeek time.Weekday   `json:"day_of_week"`
	StartTime string         `json:"start_time,omitempty"` // "HH:MM", venue-local.
	Sources   []*EventSource `json:"sources,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// EventSource records where an event was last observed by a scraper.
// Metadata is free-form JSON merged across repeated observations.
type EventSource struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	SourceID   uuid.UUID `json:"source_id"`
	LastSeenAt time.Time `json:"last_seen_at"`
	Metadata   string    `json:"metadata,omitempty"`
}

// Source is an external scrape source producing venue and event records.
type Source struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	BaseURL string    `json:"base_url"`
}
