// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MergeAudit records one executed venue merge: which record was kept, which was
// absorbed, which fields were taken from the secondary, and who performed it.
type MergeAudit struct {
	ID               uuid.UUID `json:"id"`
	PrimaryVenueID   uuid.UUID `json:"primary_venue_id"`
	SecondaryVenueID uuid.UUID `json:"secondary_venue_id"`
	OverriddenFields []string  `json:"overridden_fields"`
	EventsMigrated   int       `json:"events_migrated"`
	ImagesCombined   int       `json:"images_combined"`
	PerformedBy      string    `json:"performed_by"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
