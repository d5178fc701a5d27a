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
	"quizmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type mergeService struct {
	txManager repository.TransactionManager
	config    *config.Config
	logger    *slog.Logger
}

// MergeServiceParams holds dependencies for MergeService, injected by Fx.
type MergeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMergeService creates a new merge service instance
func NewMergeService(params MergeServiceParams) usecase.MergeUsecase {
	return &mergeService{
		txManager: params.TxManager,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mergeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Merge consolidates the secondary venue into the primary inside a single
// transaction. Any failing step rolls back every prior step, so a half-merged
// pair can never be observed.
func (srv *mergeService) Merge(ctx context.Context, input *usecase.MergeInput) (*usecase.MergeOutput, error) {
	if input.PrimaryID == input.SecondaryID {
		return nil, domainerrors.ErrSamePairVenue
	}

	overrides, err := merge.ParseOverridableFields(input.FieldOverrides)
	if err != nil {
		return nil, domainerrors.ErrFieldNotOverridable.WithDetails(err.Error())
	}

	var output *usecase.MergeOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		output, txErr = srv.mergeInTx(ctx, repoFactory, input, overrides)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Error("Merge failed",
			slog.String("primary_id", input.PrimaryID.String()),
			slog.String("secondary_id", input.SecondaryID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Venues merged",
		slog.String("primary_id", input.PrimaryID.String()),
		slog.String("secondary_id", input.SecondaryID.String()),
		slog.Int("events_migrated", output.EventsMigrated),
		slog.Int("images_combined", output.ImagesCombined),
	)

	return output, nil
}

// BatchMerge executes several merges in one transaction. The first failing
// member rolls back the entire batch.
func (srv *mergeService) BatchMerge(ctx context.Context, input *usecase.BatchMergeInput) (*usecase.BatchResult, error) {
	if len(input.Pairs) == 0 {
		return nil, domainerrors.ErrInvalidPair.WithDetails("batch contains no pairs")
	}
	for _, pair := range input.Pairs {
		if pair.PrimaryID == pair.SecondaryID {
			return nil, domainerrors.ErrSamePairVenue
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		for _, pair := range input.Pairs {
			memberInput := &usecase.MergeInput{
				PrimaryID:   pair.PrimaryID,
				SecondaryID: pair.SecondaryID,
				PerformedBy: input.PerformedBy,
			}
			if _, err := srv.mergeInTx(ctx, repoFactory, memberInput, nil); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Batch merge failed",
			slog.Int("batch_size", len(input.Pairs)),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Batch merge completed", slog.Int("merged", len(input.Pairs)))

	return &usecase.BatchResult{SuccessCount: len(input.Pairs)}, nil
}

// mergeInTx performs one merge using repositories bound to the enclosing
// transaction. Shared by Merge and BatchMerge.
func (srv *mergeService) mergeInTx(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.MergeInput, overrides []merge.OverridableField) (*usecase.MergeOutput, error) {
	venueRepo := repoFactory.VenueRepo()

	primary, err := venueRepo.FindByID(ctx, input.PrimaryID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound.WithDetails("primary venue " + input.PrimaryID.String())
		}

		return nil, errors.Wrap(err, "failed to load primary venue")
	}

	secondary, err := venueRepo.FindByID(ctx, input.SecondaryID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound.WithDetails("secondary venue " + input.SecondaryID.String())
		}

		return nil, errors.Wrap(err, "failed to load secondary venue")
	}

	// Check the registry row up front so an already-reviewed pair fails before
	// any write. Pairs without a persisted candidate (exact matches) merge fine.
	candidateRepo := repoFactory.CandidateRepo()
	pair := entity.NewVenuePair(primary.ID, secondary.ID)
	candidate, err := candidateRepo.FindByPair(ctx, pair)
	if err != nil && !errors.Is(err, repository.ErrCandidateNotFound) {
		return nil, errors.Wrap(err, "failed to look up candidate pair")
	}
	if candidate != nil && candidate.Status != entity.CandidateStatusPending {
		return nil, domainerrors.ErrCandidateAlreadyReviewed
	}

	// Move every event of the secondary to the primary.
	eventsMigrated, err := repoFactory.EventRepo().MigrateVenue(ctx, secondary.ID, primary.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to migrate events")
	}

	// Union both image sets, primary order first, de-duped by source URL.
	combined := merge.CombineImages(primary.Images, secondary.Images)
	if err := venueRepo.ReplaceImages(ctx, primary.ID, combined); err != nil {
		return nil, errors.Wrap(err, "failed to combine images")
	}

	// Fill the primary's gaps from the secondary; overrides flip fields
	// unconditionally.
	overridden := merge.ApplyFieldPolicy(primary, secondary, overrides)
	if err := venueRepo.Update(ctx, primary); err != nil {
		return nil, errors.Wrap(err, "failed to update primary venue")
	}

	// Retire the secondary, pointing old URLs at the survivor.
	if err := venueRepo.SoftDelete(ctx, secondary.ID, primary.ID); err != nil {
		return nil, errors.Wrap(err, "failed to retire secondary venue")
	}

	if candidate != nil {
		if err := candidateRepo.UpdateStatusIfPending(ctx, candidate.ID, entity.CandidateStatusMerged, input.PerformedBy, time.Now()); err != nil {
			if errors.Is(err, repository.ErrCandidateNotPending) {
				return nil, domainerrors.ErrCandidateAlreadyReviewed
			}

			return nil, errors.Wrap(err, "failed to mark candidate merged")
		}
	}

	audit := &entity.MergeAudit{
		PrimaryVenueID:   primary.ID,
		SecondaryVenueID: secondary.ID,
		OverriddenFields: overridden,
		EventsMigrated:   int(eventsMigrated),
		ImagesCombined:   len(combined),
		PerformedBy:      input.PerformedBy,
		Notes:            input.Notes,
	}
	if err := repoFactory.MergeAuditRepo().Create(ctx, audit); err != nil {
		return nil, errors.Wrap(err, "failed to write merge audit")
	}

	return &usecase.MergeOutput{
		EventsMigrated:   int(eventsMigrated),
		ImagesCombined:   len(combined),
		OverriddenFields: overridden,
	}, nil
}
