package postgres

import (
	"context"
	"time"

	"quizmap/internal/domain/entity"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/domain/repository"
	"quizmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scanRunRepository implements the repository.ScanRunRepository interface.
type scanRunRepository struct {
	db *gorm.DB
}

// NewScanRunRepository is the constructor for scanRunRepository.
func NewScanRunRepository(db *gorm.DB) repository.ScanRunRepository {
	return &scanRunRepository{
		db: db,
	}
}

// Create inserts a new scan run.
func (repo *scanRunRepository) Create(ctx context.Context, run *entity.ScanRun) error {
	runM := fromScanRunDomain(run)

	if err := repo.db.WithContext(ctx).Create(runM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create scan run")
	}

	run.ID = runM.ID
	run.StartedAt = runM.StartedAt

	return nil
}

// Update persists the final state and stats of a scan run.
func (repo *scanRunRepository) Update(ctx context.Context, run *entity.ScanRun) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScanRunModel{}).
		Where("id = ?", run.ID).
		Updates(map[string]any{
			"status":            string(run.Status),
			"processed":         run.Processed,
			"duplicates_found":  run.DuplicatesFound,
			"duplicates_stored": run.DuplicatesStored,
			"error":             run.Error,
			"finished_at":       run.FinishedAt,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update scan run")
	}
	if result.RowsAffected == 0 {
		return repository.ErrScanRunNotFound
	}

	return nil
}

// FindByID retrieves a scan run.
func (repo *scanRunRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScanRun, error) {
	var runM model.ScanRunModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&runM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScanRunNotFound
		}

		return nil, errors.Wrap(err, "failed to find scan run by ID")
	}

	return toScanRunDomain(&runM), nil
}

func toScanRunDomain(runM *model.ScanRunModel) *entity.ScanRun {
	return &entity.ScanRun{
		ID:               runM.ID,
		Status:           entity.ScanRunStatus(runM.Status),
		Processed:        runM.Processed,
		DuplicatesFound:  runM.DuplicatesFound,
		DuplicatesStored: runM.DuplicatesStored,
		MinConfidence:    runM.MinConfidence,
		ClearExisting:    runM.ClearExisting,
		Error:            runM.Error,
		StartedAt:        runM.StartedAt,
		FinishedAt:       runM.FinishedAt,
	}
}

func fromScanRunDomain(run *entity.ScanRun) *model.ScanRunModel {
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	return &model.ScanRunModel{
		ID:               run.ID,
		Status:           string(run.Status),
		Processed:        run.Processed,
		DuplicatesFound:  run.DuplicatesFound,
		DuplicatesStored: run.DuplicatesStored,
		MinConfidence:    run.MinConfidence,
		ClearExisting:    run.ClearExisting,
		Error:            run.Error,
		StartedAt:        startedAt,
		FinishedAt:       run.FinishedAt,
	}
}
