package postgres

import (
	"context"
	"time"

	"quizmap/internal/domain/entity"
	"quizmap/internal/domain/repository"
	"quizmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// FindByVenue retrieves all events of a venue with their sources preloaded.
func (repo *eventRepository) FindByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Preload("Sources").
		Where("venue_id = ?", venueID).
		Order("day_of_week ASC, start_time ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events by venue")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// CountByVenue returns the number of events attached to a venue.
func (repo *eventRepository) CountByVenue(ctx context.Context, venueID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("venue_id = ?", venueID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count events by venue")
	}

	return count, nil
}

// MigrateVenue re-points every event of fromVenueID to toVenueID.
func (repo *eventRepository) MigrateVenue(ctx context.Context, fromVenueID, toVenueID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("venue_id = ?", fromVenueID).
		Updates(map[string]any{
			"venue_id":   toVenueID,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to migrate events to venue")
	}

	return result.RowsAffected, nil
}

// toEventDomain converts a persistence model to a domain entity.
func toEventDomain(eventM *model.EventModel) *entity.Event {
	event := &entity.Event{
		ID:        eventM.ID,
		VenueID:   eventM.VenueID,
		Name:      eventM.Name,
		DayOfWeek: time.Weekday(eventM.DayOfWeek),
		StartTime: eventM.StartTime,
		CreatedAt: eventM.CreatedAt,
		UpdatedAt: eventM.UpdatedAt,
	}

	for _, sourceM := range eventM.Sources {
		event.Sources = append(event.Sources, &entity.EventSource{
			ID:         sourceM.ID,
			EventID:    sourceM.EventID,
			SourceID:   sourceM.SourceID,
			LastSeenAt: sourceM.LastSeenAt,
			Metadata:   sourceM.Metadata,
		})
	}

	return event
}
