// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"quizmap/internal/domain/entity"
	"quizmap/internal/domain/repository"
	"quizmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// venueRepository implements the repository.VenueRepository interface.
type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository is the constructor for venueRepository.
func NewVenueRepository(db *gorm.DB) repository.VenueRepository {
	return &venueRepository{
		db: db,
	}
}

// FindByID retrieves a live venue with its city and images preloaded.
func (repo *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var venueM model.VenueModel

	if err := repo.db.WithContext(ctx).
		Preload("City").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&venueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to find venue by ID")
	}

	return toVenueDomain(&venueM), nil
}

// FindByIDs retrieves the live venues among the given ids, without associations.
func (repo *venueRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Venue, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var venueModels []*model.VenueModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&venueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find venues by IDs")
	}

	venues := make([]*entity.Venue, 0, len(venueModels))
	for _, venueM := range venueModels {
		venues = append(venues, toVenueDomain(venueM))
	}

	return venues, nil
}

// ListLive pages through live venues ordered by id, for the scanner.
func (repo *venueRepository) ListLive(ctx context.Context, offset, limit int) ([]*entity.Venue, error) {
	var venueModels []*model.VenueModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&venueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list live venues")
	}

	venues := make([]*entity.Venue, 0, len(venueModels))
	for _, venueM := range venueModels {
		venues = append(venues, toVenueDomain(venueM))
	}

	return venues, nil
}

// CountLive returns the number of live venues.
func (repo *venueRepository) CountLive(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count live venues")
	}

	return count, nil
}

// FindCandidatesNear returns live venues that share the given venue's city or
// lie within radiusMeters of it, excluding the venue itself. The geographic
// branch is pre-filtered with a bounding box in SQL and then confirmed with a
// geodesic distance check, since the box over-selects near its corners.
func (repo *venueRepository) FindCandidatesNear(ctx context.Context, venue *entity.Venue, radiusMeters float64) ([]*entity.Venue, error) {
	var venueModels []*model.VenueModel

	query := repo.db.WithContext(ctx).Where("id <> ?", venue.ID)

	if venue.HasCoordinates() && radiusMeters > 0 {
		minLat, maxLat, minLon, maxLon := boundingBox(venue.Latitude, venue.Longitude, radiusMeters)
		query = query.Where(
			"city_id = ? OR (latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?)",
			venue.CityID, minLat, maxLat, minLon, maxLon,
		)
	} else {
		query = query.Where("city_id = ?", venue.CityID)
	}

	if err := query.Find(&venueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find venues near venue")
	}

	origin := orb.Point{venue.Longitude, venue.Latitude}
	venues := make([]*entity.Venue, 0, len(venueModels))
	for _, venueM := range venueModels {
		candidate := toVenueDomain(venueM)
		if candidate.CityID != venue.CityID {
			// Survived only through the bounding box: confirm the distance.
			if !candidate.HasCoordinates() || !venue.HasCoordinates() {
				continue
			}
			if geo.Distance(origin, orb.Point{candidate.Longitude, candidate.Latitude}) > radiusMeters {
				continue
			}
		}
		venues = append(venues, candidate)
	}

	return venues, nil
}

// Update persists changes to an existing venue record.
func (repo *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	venueM := fromVenueDomain(venue)

	result := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("id = ?", venue.ID).
		Updates(map[string]any{
			"name":        venueM.Name,
			"slug":        venueM.Slug,
			"address":     venueM.Address,
			"postcode":    venueM.Postcode,
			"city_id":     venueM.CityID,
			"latitude":    venueM.Latitude,
			"longitude":   venueM.Longitude,
			"website":     venueM.Website,
			"phone":       venueM.Phone,
			"facebook":    venueM.Facebook,
			"instagram":   venueM.Instagram,
			"description": venueM.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update venue")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVenueNotFound
	}

	return nil
}

// SoftDelete marks a venue deleted and records which venue absorbed it.
func (repo *venueRepository) SoftDelete(ctx context.Context, id, mergedIntoID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"merged_into_id": mergedIntoID,
			"deleted_at":     time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete venue")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVenueNotFound
	}

	return nil
}

// ReplaceImages swaps a venue's image set for the given one.
func (repo *venueRepository) ReplaceImages(ctx context.Context, venueID uuid.UUID, images []*entity.VenueImage) error {
	if err := repo.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Delete(&model.VenueImageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete existing venue images")
	}

	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*model.VenueImageModel, 0, len(images))
	for _, image := range images {
		imageM := fromVenueImageDomain(image)
		imageM.VenueID = venueID
		imageModels = append(imageModels, imageM)
	}

	if err := repo.db.WithContext(ctx).Create(&imageModels).Error; err != nil {
		return errors.Wrap(err, "failed to create venue images")
	}

	return nil
}

// boundingBox returns a latitude/longitude box that fully contains the circle
// of radiusMeters around the point. Longitude degrees shrink with latitude.
func boundingBox(lat, lon, radiusMeters float64) (minLat, maxLat, minLon, maxLon float64) {
	const metersPerDegreeLat = 111320.0

	latDelta := radiusMeters / metersPerDegreeLat
	lonScale := geo.Distance(orb.Point{lon, lat}, orb.Point{lon + 1, lat})
	lonDelta := latDelta
	if lonScale > 0 {
		lonDelta = radiusMeters / lonScale
	}

	return lat - latDelta, lat + latDelta, lon - lonDelta, lon + lonDelta
}

// toVenueDomain converts a persistence model to a domain entity.
func toVenueDomain(venueM *model.VenueModel) *entity.Venue {
	venue := &entity.Venue{
		ID:           venueM.ID,
		Name:         venueM.Name,
		Slug:         venueM.Slug,
		Address:      venueM.Address,
		Postcode:     venueM.Postcode,
		CityID:       venueM.CityID,
		Website:      venueM.Website,
		Phone:        venueM.Phone,
		Facebook:     venueM.Facebook,
		Instagram:    venueM.Instagram,
		Description:  venueM.Description,
		MergedIntoID: venueM.MergedIntoID,
		CreatedAt:    venueM.CreatedAt,
		UpdatedAt:    venueM.UpdatedAt,
	}

	if venueM.Latitude != nil {
		venue.Latitude = *venueM.Latitude
	}
	if venueM.Longitude != nil {
		venue.Longitude = *venueM.Longitude
	}
	if venueM.DeletedAt.Valid {
		deletedAt := venueM.DeletedAt.Time
		venue.DeletedAt = &deletedAt
	}
	if venueM.City != nil {
		venue.City = &entity.City{
			ID:   venueM.City.ID,
			Name: venueM.City.Name,
			Slug: venueM.City.Slug,
		}
	}
	for _, imageM := range venueM.Images {
		venue.Images = append(venue.Images, toVenueImageDomain(imageM))
	}

	return venue
}

// fromVenueDomain converts a domain entity to a persistence model.
func fromVenueDomain(venue *entity.Venue) *model.VenueModel {
	venueM := &model.VenueModel{
		ID:           venue.ID,
		Name:         venue.Name,
		Slug:         venue.Slug,
		Address:      venue.Address,
		Postcode:     venue.Postcode,
		CityID:       venue.CityID,
		Website:      venue.Website,
		Phone:        venue.Phone,
		Facebook:     venue.Facebook,
		Instagram:    venue.Instagram,
		Description:  venue.Description,
		MergedIntoID: venue.MergedIntoID,
	}

	if venue.HasCoordinates() {
		lat, lon := venue.Latitude, venue.Longitude
		venueM.Latitude = &lat
		venueM.Longitude = &lon
	}

	return venueM
}

func toVenueImageDomain(imageM *model.VenueImageModel) *entity.VenueImage {
	return &entity.VenueImage{
		ID:        imageM.ID,
		VenueID:   imageM.VenueID,
		SourceURL: imageM.SourceURL,
		Width:     imageM.Width,
		Height:    imageM.Height,
		Position:  imageM.Position,
	}
}

func fromVenueImageDomain(image *entity.VenueImage) *model.VenueImageModel {
	return &model.VenueImageModel{
		ID:        image.ID,
		VenueID:   image.VenueID,
		SourceURL: image.SourceURL,
		Width:     image.Width,
		Height:    image.Height,
		Position:  image.Position,
	}
}
