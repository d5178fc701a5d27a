package postgres

import (
	"context"
	"strings"
	"time"

	"quizmap/internal/domain/entity"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/domain/repository"
	"quizmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// candidateRepository implements the repository.DuplicateCandidateRepository interface.
type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository is the constructor for candidateRepository.
func NewCandidateRepository(db *gorm.DB) repository.DuplicateCandidateRepository {
	return &candidateRepository{
		db: db,
	}
}

// FindByID retrieves a candidate by its row id.
func (repo *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DuplicateCandidate, error) {
	var candidateM model.DuplicateCandidateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&candidateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCandidateNotFound
		}

		return nil, errors.Wrap(err, "failed to find candidate by ID")
	}

	return toCandidateDomain(&candidateM), nil
}

// FindByPair retrieves the candidate for a canonical venue pair, in any status.
func (repo *candidateRepository) FindByPair(ctx context.Context, pair entity.VenuePair) (*entity.DuplicateCandidate, error) {
	var candidateM model.DuplicateCandidateModel

	if err := repo.db.WithContext(ctx).
		Where("venue1_id = ? AND venue2_id = ?", pair.Venue1, pair.Venue2).
		First(&candidateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCandidateNotFound
		}

		return nil, errors.Wrap(err, "failed to find candidate by pair")
	}

	return toCandidateDomain(&candidateM), nil
}

// List returns candidates matching the filter, excluding any pair that
// references a soft-deleted venue.
func (repo *candidateRepository) List(ctx context.Context, filter repository.CandidateFilter) ([]*entity.DuplicateCandidate, error) {
	var candidateModels []*model.DuplicateCandidateModel

	query := repo.filteredQuery(ctx, filter).Order(orderClause(filter))

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	if err := query.Find(&candidateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list candidates")
	}

	candidates := make([]*entity.DuplicateCandidate, 0, len(candidateModels))
	for _, candidateM := range candidateModels {
		candidates = append(candidates, toCandidateDomain(candidateM))
	}

	return candidates, nil
}

// Count returns the number of candidates List would yield across all pages.
func (repo *candidateRepository) Count(ctx context.Context, filter repository.CandidateFilter) (int64, error) {
	var count int64

	if err := repo.filteredQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count candidates")
	}

	return count, nil
}

// Statistics aggregates the pending queue by confidence band in one query.
func (repo *candidateRepository) Statistics(ctx context.Context) (*repository.CandidateStatistics, error) {
	var stats repository.CandidateStatistics

	if err := repo.filteredQuery(ctx, repository.CandidateFilter{}).
		Select(
			"COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE confidence >= ?) AS high_confidence, "+
				"COUNT(*) FILTER (WHERE confidence >= ? AND confidence < ?) AS medium_confidence, "+
				"COUNT(*) FILTER (WHERE confidence < ?) AS low_confidence, "+
				"COALESCE(AVG(confidence), 0) AS avg_confidence",
			entity.HighConfidenceThreshold,
			entity.MediumConfidenceThreshold, entity.HighConfidenceThreshold,
			entity.MediumConfidenceThreshold,
		).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate candidate statistics")
	}

	return &stats, nil
}

// CreatePending inserts a new pending candidate.
func (repo *candidateRepository) CreatePending(ctx context.Context, candidate *entity.DuplicateCandidate) error {
	candidateM := fromCandidateDomain(candidate)
	candidateM.Status = string(entity.CandidateStatusPending)

	if err := repo.db.WithContext(ctx).Create(candidateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another scan stored this pair concurrently. The canonical pair
			// unique index makes this a no-op rather than a failure.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create duplicate candidate")
	}

	candidate.ID = candidateM.ID
	candidate.Status = entity.CandidateStatusPending
	candidate.CreatedAt = candidateM.CreatedAt
	candidate.UpdatedAt = candidateM.UpdatedAt

	return nil
}

// UpdatePendingScores refreshes the scores of an existing pending candidate.
func (repo *candidateRepository) UpdatePendingScores(ctx context.Context, id uuid.UUID, score entity.SimilarityScore) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DuplicateCandidateModel{}).
		Where("id = ? AND status = ?", id, entity.CandidateStatusPending).
		Updates(map[string]any{
			"name_similarity":     score.NameSimilarity,
			"location_similarity": score.LocationSimilarity,
			"confidence":          score.Confidence,
			"match_criteria":      strings.Join(score.MatchCriteria, ","),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update candidate scores")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMissingPending(ctx, id)
	}

	return nil
}

// UpdateStatusIfPending transitions a candidate out of pending, stamping the
// reviewer. The status predicate in the WHERE clause is the concurrency guard:
// of two racing reviewers, only the first commit matches a pending row.
func (repo *candidateRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.CandidateStatus, reviewedBy string, reviewedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DuplicateCandidateModel{}).
		Where("id = ? AND status = ?", id, entity.CandidateStatusPending).
		Updates(map[string]any{
			"status":      string(status),
			"reviewed_by": reviewedBy,
			"reviewed_at": reviewedAt,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update candidate status")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMissingPending(ctx, id)
	}

	return nil
}

// DeleteAllPending removes every pending candidate. Merged and rejected rows
// are retained so reviewed pairs never resurface on a re-scan.
func (repo *candidateRepository) DeleteAllPending(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("status = ?", entity.CandidateStatusPending).
		Delete(&model.DuplicateCandidateModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete pending candidates")
	}

	return result.RowsAffected, nil
}

// DeleteForVenue removes every candidate referencing the venue, whatever its status.
func (repo *candidateRepository) DeleteForVenue(ctx context.Context, venueID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("venue1_id = ? OR venue2_id = ?", venueID, venueID).
		Delete(&model.DuplicateCandidateModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete candidates for venue")
	}

	return result.RowsAffected, nil
}

// DeleteOrphanedPending removes pending candidates whose venues are gone or
// soft-deleted. Merged rows keep their soft-deleted secondary on purpose.
func (repo *candidateRepository) DeleteOrphanedPending(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("status = ?", entity.CandidateStatusPending).
		Where(`NOT EXISTS (SELECT 1 FROM venues v WHERE v.id = duplicate_candidates.venue1_id AND v.deleted_at IS NULL)
			OR NOT EXISTS (SELECT 1 FROM venues v WHERE v.id = duplicate_candidates.venue2_id AND v.deleted_at IS NULL)`).
		Delete(&model.DuplicateCandidateModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete orphaned candidates")
	}

	return result.RowsAffected, nil
}

// FindExactMatches derives the ephemeral exact-match set: live venues sharing
// a normalized name plus the same postcode or the same city. V1 orders before
// v2 so each unordered pair appears once.
func (repo *candidateRepository) FindExactMatches(ctx context.Context) ([]*entity.ExactMatch, error) {
	type exactMatchRow struct {
		Venue1ID   uuid.UUID
		Venue2ID   uuid.UUID
		Venue1Name string
		Venue2Name string
		Criterion  string
	}

	var rows []exactMatchRow

	const query = `
		SELECT v1.id AS venue1_id, v2.id AS venue2_id,
		       v1.name AS venue1_name, v2.name AS venue2_name,
		       CASE
		           WHEN v1.postcode <> '' AND UPPER(REPLACE(v1.postcode, ' ', '')) = UPPER(REPLACE(v2.postcode, ' ', ''))
		               THEN 'same_postcode'
		           ELSE 'same_city'
		       END AS criterion
		FROM venues v1
		JOIN venues v2
		  ON v1.id < v2.id
		 AND LOWER(TRIM(v1.name)) = LOWER(TRIM(v2.name))
		 AND (
		         (v1.postcode <> '' AND UPPER(REPLACE(v1.postcode, ' ', '')) = UPPER(REPLACE(v2.postcode, ' ', '')))
		      OR v1.city_id = v2.city_id
		     )
		WHERE v1.deleted_at IS NULL
		  AND v2.deleted_at IS NULL
		ORDER BY v1.name ASC`

	if err := repo.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find exact matches")
	}

	matches := make([]*entity.ExactMatch, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, &entity.ExactMatch{
			Pair:       entity.NewVenuePair(row.Venue1ID, row.Venue2ID),
			Venue1Name: row.Venue1Name,
			Venue2Name: row.Venue2Name,
			Criterion:  row.Criterion,
		})
	}

	return matches, nil
}

// filteredQuery builds the base review queue query: status (pending unless the
// filter says otherwise), optional band range, both venues still live.
func (repo *candidateRepository) filteredQuery(ctx context.Context, filter repository.CandidateFilter) *gorm.DB {
	status := filter.Status
	if status == "" {
		status = entity.CandidateStatusPending
	}

	query := repo.db.WithContext(ctx).
		Model(&model.DuplicateCandidateModel{}).
		Joins("JOIN venues v1 ON v1.id = duplicate_candidates.venue1_id AND v1.deleted_at IS NULL").
		Joins("JOIN venues v2 ON v2.id = duplicate_candidates.venue2_id AND v2.deleted_at IS NULL").
		Where("duplicate_candidates.status = ?", status)

	switch filter.Band {
	case entity.ConfidenceBandHigh:
		query = query.Where("duplicate_candidates.confidence >= ?", entity.HighConfidenceThreshold)
	case entity.ConfidenceBandMedium:
		query = query.Where("duplicate_candidates.confidence >= ? AND duplicate_candidates.confidence < ?",
			entity.MediumConfidenceThreshold, entity.HighConfidenceThreshold)
	case entity.ConfidenceBandLow:
		query = query.Where("duplicate_candidates.confidence < ?", entity.MediumConfidenceThreshold)
	}

	return query
}

func orderClause(filter repository.CandidateFilter) string {
	column := "confidence"
	switch filter.SortBy {
	case repository.SortByNameSimilarity:
		column = "name_similarity"
	case repository.SortByLocationSimilarity:
		column = "location_similarity"
	case repository.SortByCreatedAt:
		column = "created_at"
	}

	direction := "DESC"
	if filter.SortAsc {
		direction = "ASC"
	}

	return "duplicate_candidates." + column + " " + direction
}

// classifyMissingPending distinguishes "row gone" from "row already reviewed"
// after a guarded update touched zero rows.
func (repo *candidateRepository) classifyMissingPending(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DuplicateCandidateModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check candidate existence")
	}
	if count == 0 {
		return repository.ErrCandidateNotFound
	}

	return repository.ErrCandidateNotPending
}

// toCandidateDomain converts a persistence model to a domain entity.
func toCandidateDomain(candidateM *model.DuplicateCandidateModel) *entity.DuplicateCandidate {
	candidate := &entity.DuplicateCandidate{
		ID:                 candidateM.ID,
		Pair:               entity.VenuePair{Venue1: candidateM.Venue1ID, Venue2: candidateM.Venue2ID},
		ConfidenceScore:    candidateM.Confidence,
		NameSimilarity:     candidateM.NameSimilarity,
		LocationSimilarity: candidateM.LocationSimilarity,
		Status:             entity.CandidateStatus(candidateM.Status),
		ReviewedAt:         candidateM.ReviewedAt,
		ReviewedBy:         candidateM.ReviewedBy,
		CreatedAt:          candidateM.CreatedAt,
		UpdatedAt:          candidateM.UpdatedAt,
	}

	if candidateM.MatchCriteria != "" {
		candidate.MatchCriteria = strings.Split(candidateM.MatchCriteria, ",")
	}

	return candidate
}

// fromCandidateDomain converts a domain entity to a persistence model.
func fromCandidateDomain(candidate *entity.DuplicateCandidate) *model.DuplicateCandidateModel {
	return &model.DuplicateCandidateModel{
		ID:                 candidate.ID,
		Venue1ID:           candidate.Pair.Venue1,
		Venue2ID:           candidate.Pair.Venue2,
		NameSimilarity:     candidate.NameSimilarity,
		LocationSimilarity: candidate.LocationSimilarity,
		Confidence:         candidate.ConfidenceScore,
		MatchCriteria:      strings.Join(candidate.MatchCriteria, ","),
		Status:             string(candidate.Status),
		ReviewedAt:         candidate.ReviewedAt,
		ReviewedBy:         candidate.ReviewedBy,
	}
}
