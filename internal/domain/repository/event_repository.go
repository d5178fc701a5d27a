package repository

import (
	"context"

	"quizmap/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRepository defines event-related database operations used by the merge.
type EventRepository interface {
	// FindByVenue retrieves all events of a venue with their sources preloaded.
	FindByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.Event, error)

	// CountByVenue returns the number of events attached to a venue.
	CountByVenue(ctx context.Context, venueID uuid.UUID) (int64, error)

	// MigrateVenue re-points every event of fromVenueID to toVenueID and
	// returns how many rows were updated. Events are moved, never duplicated.
	MigrateVenue(ctx context.Context, fromVenueID, toVenueID uuid.UUID) (int64, error)
}
