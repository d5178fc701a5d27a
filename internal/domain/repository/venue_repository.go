// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"quizmap/internal/domain/entity"
	"quizmap/internal/errors"

	"github.com/google/uuid"
)

// ErrVenueNotFound is returned when a venue does not exist or is soft-deleted.
// Soft-deleted venues are treated as "does not exist" throughout the dedup core.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepository defines venue-related database operations.
// All reads exclude soft-deleted venues unless stated otherwise.
type VenueRepository interface {
	// FindByID retrieves a live venue with its city and images preloaded.
	// Returns ErrVenueNotFound for missing and soft-deleted venues alike.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)

	// FindByIDs retrieves the live venues among the given ids, without associations.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Venue, error)

	// ListLive pages through live venues ordered by id, for the scanner.
	ListLive(ctx context.Context, offset, limit int) ([]*entity.Venue, error)

	// CountLive returns the number of live venues.
	CountLive(ctx context.Context) (int64, error)

	// FindCandidatesNear returns live venues that share the given venue's city
	// or lie within radiusMeters of it, excluding the venue itself. This is the
	// blocking set the scanner scores against.
	FindCandidatesNear(ctx context.Context, venue *entity.Venue, radiusMeters float64) ([]*entity.Venue, error)

	// Update persists changes to an existing venue record.
	Update(ctx context.Context, venue *entity.Venue) error

	// SoftDelete marks a venue deleted and records which venue absorbed it,
	// so old URLs can resolve to "merged, see primary".
	SoftDelete(ctx context.Context, id, mergedIntoID uuid.UUID) error

	// ReplaceImages swaps a venue's image set for the given one.
	ReplaceImages(ctx context.Context, venueID uuid.UUID, images []*entity.VenueImage) error
}
