package impl

import (
	"context"
	"log/slog"
	"time"

	"quizmap/config"
	deliverycontext "quizmap/internal/delivery/context"
	"quizmap/internal/domain/entity"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/domain/merge"
	"quizmap/internal/domain/repository"
	"quizmap/internal/domain/similarity"
	"quizmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	venueRepo     repository.VenueRepository
	eventRepo     repository.EventRepository
	candidateRepo repository.DuplicateCandidateRepository
	txManager     repository.TransactionManager
	config        *config.Config
	logger        *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	VenueRepo     repository.VenueRepository
	EventRepo     repository.EventRepository
	CandidateRepo repository.DuplicateCandidateRepository
	TxManager     repository.TransactionManager
	Config        *config.Config
	Logger        *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		venueRepo:     params.VenueRepo,
		eventRepo:     params.EventRepo,
		candidateRepo: params.CandidateRepo,
		txManager:     params.TxManager,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCandidates returns pending candidates for review with venue names resolved.
func (srv *reviewService) ListCandidates(ctx context.Context, input *usecase.ListCandidatesInput) ([]*usecase.CandidateSummary, error) {
	candidates, err := srv.candidateRepo.List(ctx, toCandidateFilter(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidates")
	}

	names, err := srv.venueNames(ctx, candidates)
	if err != nil {
		return nil, err
	}

	summaries := make([]*usecase.CandidateSummary, 0, len(candidates))
	for _, candidate := range candidates {
		summaries = append(summaries, &usecase.CandidateSummary{
			ID:                 candidate.ID,
			Pair:               candidate.Pair,
			Venue1Name:         names[candidate.Pair.Venue1],
			Venue2Name:         names[candidate.Pair.Venue2],
			ConfidenceScore:    candidate.ConfidenceScore,
			NameSimilarity:     candidate.NameSimilarity,
			LocationSimilarity: candidate.LocationSimilarity,
			MatchCriteria:      candidate.MatchCriteria,
			Band:               candidate.Band(),
			Status:             candidate.Status,
		})
	}

	return summaries, nil
}

// CountCandidates returns the total across all pages of the same filter.
func (srv *reviewService) CountCandidates(ctx context.Context, input *usecase.ListCandidatesInput) (int64, error) {
	count, err := srv.candidateRepo.Count(ctx, toCandidateFilter(input))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count candidates")
	}

	return count, nil
}

// Statistics aggregates the pending queue by confidence band.
func (srv *reviewService) Statistics(ctx context.Context) (*repository.CandidateStatistics, error) {
	stats, err := srv.candidateRepo.Statistics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate statistics")
	}

	return stats, nil
}

// ExactMatches returns the ephemeral rule-based candidate set.
func (srv *reviewService) ExactMatches(ctx context.Context) ([]*entity.ExactMatch, error) {
	matches, err := srv.candidateRepo.FindExactMatches(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find exact matches")
	}

	return matches, nil
}

// GetComparison loads both venues side by side with sub-scores recomputed from
// current data. A pair whose venue disappeared is reconciled on the spot: its
// stale registry rows are removed and a resolved detail is returned.
func (srv *reviewService) GetComparison(ctx context.Context, venue1ID, venue2ID uuid.UUID) (*usecase.ComparisonDetail, error) {
	if venue1ID == venue2ID {
		return nil, domainerrors.ErrSamePairVenue
	}

	venue1, err1 := srv.venueRepo.FindByID(ctx, venue1ID)
	if err1 != nil && !errors.Is(err1, repository.ErrVenueNotFound) {
		return nil, errors.Wrap(err1, "failed to load first venue")
	}
	venue2, err2 := srv.venueRepo.FindByID(ctx, venue2ID)
	if err2 != nil && !errors.Is(err2, repository.ErrVenueNotFound) {
		return nil, errors.Wrap(err2, "failed to load second venue")
	}

	if venue1 == nil || venue2 == nil {
		if err := srv.reconcileMissing(ctx, venue1, venue1ID, venue2, venue2ID); err != nil {
			return nil, err
		}

		return &usecase.ComparisonDetail{Resolved: true}, nil
	}

	pair := entity.NewVenuePair(venue1ID, venue2ID)
	candidate, err := srv.candidateRepo.FindByPair(ctx, pair)
	if err != nil && !errors.Is(err, repository.ErrCandidateNotFound) {
		return nil, errors.Wrap(err, "failed to look up candidate pair")
	}

	venue1Events, err := srv.eventRepo.FindByVenue(ctx, venue1.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load first venue events")
	}
	venue2Events, err := srv.eventRepo.FindByVenue(ctx, venue2.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load second venue events")
	}

	score := similarity.Score(venue1, venue2, scorerConfigFrom(srv.config))
	suggested, _ := merge.ChoosePrimary(venue1, venue2)

	return &usecase.ComparisonDetail{
		Candidate:        candidate,
		Venue1:           venue1,
		Venue2:           venue2,
		Venue1Events:     venue1Events,
		Venue2Events:     venue2Events,
		Score:            &score,
		SuggestedPrimary: suggested.ID,
	}, nil
}

// Reject marks a pending candidate as not-a-duplicate.
func (srv *reviewService) Reject(ctx context.Context, input *usecase.RejectInput) error {
	candidateID, err := srv.resolveCandidateID(ctx, input)
	if err != nil {
		return err
	}

	if err := srv.rejectByID(ctx, srv.candidateRepo, candidateID, input.ReviewedBy); err != nil {
		return err
	}

	srv.log(ctx).Info("Candidate rejected",
		slog.String("candidate_id", candidateID.String()),
		slog.String("reviewed_by", input.ReviewedBy),
	)

	return nil
}

// BatchReject rejects several candidates in one transaction; any failure
// aborts the whole batch.
func (srv *reviewService) BatchReject(ctx context.Context, input *usecase.BatchRejectInput) (*usecase.BatchResult, error) {
	if len(input.CandidateIDs) == 0 {
		return nil, domainerrors.ErrInvalidPair.WithDetails("batch contains no candidates")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		candidateRepo := repoFactory.CandidateRepo()
		for _, id := range input.CandidateIDs {
			if err := srv.rejectByID(ctx, candidateRepo, id, input.ReviewedBy); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Batch reject failed",
			slog.Int("batch_size", len(input.CandidateIDs)),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Batch reject completed", slog.Int("rejected", len(input.CandidateIDs)))

	return &usecase.BatchResult{SuccessCount: len(input.CandidateIDs)}, nil
}

func (srv *reviewService) rejectByID(ctx context.Context, candidateRepo repository.DuplicateCandidateRepository, id uuid.UUID, reviewedBy string) error {
	if err := candidateRepo.UpdateStatusIfPending(ctx, id, entity.CandidateStatusRejected, reviewedBy, time.Now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrCandidateNotFound):
			return domainerrors.ErrCandidateNotFound.WithDetails(id.String())
		case errors.Is(err, repository.ErrCandidateNotPending):
			return domainerrors.ErrCandidateAlreadyReviewed
		default:
			return errors.Wrap(err, "failed to reject candidate")
		}
	}

	return nil
}

// resolveCandidateID accepts either a row id or a venue pair.
func (srv *reviewService) resolveCandidateID(ctx context.Context, input *usecase.RejectInput) (uuid.UUID, error) {
	if input.CandidateID != nil {
		return *input.CandidateID, nil
	}
	if input.Venue1ID == nil || input.Venue2ID == nil {
		return uuid.Nil, domainerrors.ErrInvalidPair.WithDetails("either candidate_id or both venue ids are required")
	}
	if *input.Venue1ID == *input.Venue2ID {
		return uuid.Nil, domainerrors.ErrSamePairVenue
	}

	candidate, err := srv.candidateRepo.FindByPair(ctx, entity.NewVenuePair(*input.Venue1ID, *input.Venue2ID))
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return uuid.Nil, domainerrors.ErrCandidateNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to look up candidate pair")
	}

	return candidate.ID, nil
}

// reconcileMissing removes every registry row touching venues that no longer
// exist, so the review queue stops offering them.
func (srv *reviewService) reconcileMissing(ctx context.Context, venue1 *entity.Venue, venue1ID uuid.UUID, venue2 *entity.Venue, venue2ID uuid.UUID) error {
	for _, missing := range []struct {
		venue *entity.Venue
		id    uuid.UUID
	}{
		{venue1, venue1ID},
		{venue2, venue2ID},
	} {
		if missing.venue != nil {
			continue
		}

		deleted, err := srv.candidateRepo.DeleteForVenue(ctx, missing.id)
		if err != nil {
			return errors.Wrap(err, "failed to reconcile candidates for missing venue")
		}
		if deleted > 0 {
			srv.log(ctx).Info("Reconciled candidates for missing venue",
				slog.String("venue_id", missing.id.String()),
				slog.Int64("deleted", deleted),
			)
		}
	}

	return nil
}

func (srv *reviewService) venueNames(ctx context.Context, candidates []*entity.DuplicateCandidate) (map[uuid.UUID]string, error) {
	idSet := make(map[uuid.UUID]struct{}, len(candidates)*2)
	for _, candidate := range candidates {
		idSet[candidate.Pair.Venue1] = struct{}{}
		idSet[candidate.Pair.Venue2] = struct{}{}
	}

	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	venues, err := srv.venueRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate venues")
	}

	names := make(map[uuid.UUID]string, len(venues))
	for _, venue := range venues {
		names[venue.ID] = venue.Name
	}

	return names, nil
}

func toCandidateFilter(input *usecase.ListCandidatesInput) repository.CandidateFilter {
	filter := repository.CandidateFilter{}
	if input == nil {
		return filter
	}

	filter.Band = input.Band
	filter.SortBy = input.SortBy
	filter.SortAsc = input.SortAsc
	filter.Page = input.Page
	filter.PerPage = input.PerPage

	return filter
}
