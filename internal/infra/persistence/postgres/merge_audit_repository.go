package postgres

import (
	"context"
	"strings"

	"quizmap/internal/domain/entity"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/domain/repository"
	"quizmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mergeAuditRepository implements the repository.MergeAuditRepository interface.
type mergeAuditRepository struct {
	db *gorm.DB
}

// NewMergeAuditRepository is the constructor for mergeAuditRepository.
func NewMergeAuditRepository(db *gorm.DB) repository.MergeAuditRepository {
	return &mergeAuditRepository{
		db: db,
	}
}

// Create records one executed merge.
func (repo *mergeAuditRepository) Create(ctx context.Context, audit *entity.MergeAudit) error {
	auditM := &model.MergeAuditModel{
		ID:               audit.ID,
		PrimaryVenueID:   audit.PrimaryVenueID,
		SecondaryVenueID: audit.SecondaryVenueID,
		OverriddenFields: strings.Join(audit.OverriddenFields, ","),
		EventsMigrated:   audit.EventsMigrated,
		ImagesCombined:   audit.ImagesCombined,
		PerformedBy:      audit.PerformedBy,
		Notes:            audit.Notes,
	}

	if err := repo.db.WithContext(ctx).Create(auditM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create merge audit")
	}

	audit.ID = auditM.ID
	audit.CreatedAt = auditM.CreatedAt

	return nil
}

// ListByVenue returns audits where the venue was primary or secondary, newest first.
func (repo *mergeAuditRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.MergeAudit, error) {
	var auditModels []*model.MergeAuditModel

	if err := repo.db.WithContext(ctx).
		Where("primary_venue_id = ? OR secondary_venue_id = ?", venueID, venueID).
		Order("created_at DESC").
		Find(&auditModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list merge audits by venue")
	}

	audits := make([]*entity.MergeAudit, 0, len(auditModels))
	for _, auditM := range auditModels {
		audit := &entity.MergeAudit{
			ID:               auditM.ID,
			PrimaryVenueID:   auditM.PrimaryVenueID,
			SecondaryVenueID: auditM.SecondaryVenueID,
			EventsMigrated:   auditM.EventsMigrated,
			ImagesCombined:   auditM.ImagesCombined,
			PerformedBy:      auditM.PerformedBy,
			Notes:            auditM.Notes,
			CreatedAt:        auditM.CreatedAt,
		}
		if auditM.OverriddenFields != "" {
			audit.OverriddenFields = strings.Split(auditM.OverriddenFields, ",")
		}
		audits = append(audits, audit)
	}

	return audits, nil
}
