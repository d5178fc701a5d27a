// Package impl provides the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"quizmap/config"
	deliverycontext "quizmap/internal/delivery/context"
	"quizmap/internal/domain/entity"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/domain/repository"
	"quizmap/internal/domain/service"
	"quizmap/internal/domain/similarity"
	"quizmap/internal/usecase"
	"quizmap/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type scannerService struct {
	venueRepo      repository.VenueRepository
	candidateRepo  repository.DuplicateCandidateRepository
	scanRunRepo    repository.ScanRunRepository
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// ScannerServiceParams holds dependencies for ScannerService, injected by Fx.
type ScannerServiceParams struct {
	fx.In

	VenueRepo      repository.VenueRepository
	CandidateRepo  repository.DuplicateCandidateRepository
	ScanRunRepo    repository.ScanRunRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewScannerService creates a new scanner service instance
func NewScannerService(params ScannerServiceParams) usecase.ScannerUsecase {
	return &scannerService{
		venueRepo:      params.VenueRepo,
		candidateRepo:  params.CandidateRepo,
		scanRunRepo:    params.ScanRunRepo,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *scannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TriggerScan records a scan run and hands the actual work to the background
// worker through Pub/Sub. The admin request returns as soon as the run row
// exists and the event is published.
func (srv *scannerService) TriggerScan(ctx context.Context, input *usecase.TriggerScanInput) (*entity.ScanRun, error) {
	minConfidence := input.MinConfidence
	if minConfidence <= 0 {
		minConfidence = srv.config.Dedup.MinConfidence
	}
	batchSize := input.BatchSize
	if batchSize <= 0 {
		batchSize = srv.config.Dedup.BatchSize
	}

	run := &entity.ScanRun{
		Status:        entity.ScanRunStatusRunning,
		MinConfidence: minConfidence,
		ClearExisting: input.ClearExisting,
		StartedAt:     time.Now(),
	}
	if err := srv.scanRunRepo.Create(ctx, run); err != nil {
		srv.log(ctx).Error("Failed to create scan run", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create scan run")
	}

	event := &service.ScanRequestedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		ScanRunID:     run.ID,
		ClearExisting: input.ClearExisting,
		MinConfidence: minConfidence,
		BatchSize:     batchSize,
		RequestedBy:   input.RequestedBy,
	}
	if err := srv.eventPublisher.PublishScanRequested(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish scan request",
			slog.String("scan_run_id", run.ID.String()),
			slog.Any("error", err),
		)

		// The run row exists but nobody will execute it. Mark it failed so
		// polling clients are not left waiting forever.
		now := time.Now()
		run.Status = entity.ScanRunStatusFailed
		run.Error = "failed to publish scan request"
		run.FinishedAt = &now
		if updateErr := srv.scanRunRepo.Update(ctx, run); updateErr != nil {
			srv.log(ctx).Error("Failed to mark scan run as failed", slog.Any("error", updateErr))
		}

		return nil, domainerrors.ErrScanTriggerFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Scan run triggered",
		slog.String("scan_run_id", run.ID.String()),
		slog.Float64("min_confidence", minConfidence),
		slog.Bool("clear_existing", input.ClearExisting),
	)

	return run, nil
}

// GetScanRun returns a scan run for polling.
func (srv *scannerService) GetScanRun(ctx context.Context, id uuid.UUID) (*entity.ScanRun, error) {
	run, err := srv.scanRunRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScanRunNotFound) {
			return nil, domainerrors.ErrScanRunNotFound
		}

		return nil, errors.Wrap(err, "failed to find scan run")
	}

	return run, nil
}

// Scan walks the live venue population in pages, scores each venue against its
// blocking set and upserts qualifying pairs into the duplicate registry.
func (srv *scannerService) Scan(ctx context.Context, input *usecase.ScanInput) (*usecase.ScanStats, error) {
	minConfidence := input.MinConfidence
	if minConfidence <= 0 {
		minConfidence = srv.config.Dedup.MinConfidence
	}
	batchSize := input.BatchSize
	if batchSize <= 0 {
		batchSize = srv.config.Dedup.BatchSize
	}

	run := srv.loadScanRun(ctx, input.ScanRunID)

	stats, err := srv.scan(ctx, minConfidence, batchSize, input.ClearExisting)
	if err != nil {
		srv.finishScanRun(ctx, run, stats, err)

		return nil, err
	}

	srv.finishScanRun(ctx, run, stats, nil)

	srv.log(ctx).Info("Scan completed",
		slog.Int("processed", stats.Processed),
		slog.Int("duplicates_found", stats.DuplicatesFound),
		slog.Int("duplicates_stored", stats.DuplicatesStored),
	)

	return stats, nil
}

func (srv *scannerService) scan(ctx context.Context, minConfidence float64, batchSize int, clearExisting bool) (*usecase.ScanStats, error) {
	stats := &usecase.ScanStats{}

	if clearExisting {
		deleted, err := srv.candidateRepo.DeleteAllPending(ctx)
		if err != nil {
			return stats, errors.Wrap(err, "failed to clear pending candidates")
		}
		srv.log(ctx).Info("Cleared pending candidates", slog.Int64("deleted", deleted))
	}

	// Registry rows can outlive their venues when deletions happen upstream.
	orphaned, err := srv.candidateRepo.DeleteOrphanedPending(ctx)
	if err != nil {
		return stats, errors.Wrap(err, "failed to sweep orphaned candidates")
	}
	if orphaned > 0 {
		srv.log(ctx).Info("Swept orphaned candidates", slog.Int64("deleted", orphaned))
	}

	scorerCfg := srv.scorerConfig()
	radius := srv.config.Dedup.BlockingRadiusMeters

	for offset := 0; ; offset += batchSize {
		venues, err := srv.venueRepo.ListLive(ctx, offset, batchSize)
		if err != nil {
			return stats, errors.Wrap(err, "failed to list venues")
		}
		if len(venues) == 0 {
			break
		}

		for _, venue := range venues {
			if err := ctx.Err(); err != nil {
				return stats, errors.Wrap(err, "scan cancelled")
			}

			candidates, err := srv.venueRepo.FindCandidatesNear(ctx, venue, radius)
			if err != nil {
				return stats, errors.Wrap(err, "failed to find nearby venues")
			}

			for _, other := range candidates {
				pair := entity.NewVenuePair(venue.ID, other.ID)
				// Each unordered pair is scored once, from its canonical side.
				if pair.Venue1 != venue.ID {
					continue
				}

				score := similarity.Score(venue, other, scorerCfg)
				if score.Confidence < minConfidence {
					continue
				}
				stats.DuplicatesFound++

				stored, err := srv.upsertCandidate(ctx, pair, score)
				if err != nil {
					return stats, err
				}
				if stored {
					stats.DuplicatesStored++
				}
			}

			stats.Processed++
		}

		if len(venues) < batchSize {
			break
		}
	}

	return stats, nil
}

// upsertCandidate stores one scored pair: new pairs become pending rows,
// existing pending rows are refreshed in place, reviewed pairs are left alone
// so merges and rejections never resurface.
func (srv *scannerService) upsertCandidate(ctx context.Context, pair entity.VenuePair, score entity.SimilarityScore) (bool, error) {
	existing, err := srv.candidateRepo.FindByPair(ctx, pair)
	if err != nil {
		if !errors.Is(err, repository.ErrCandidateNotFound) {
			return false, errors.Wrap(err, "failed to look up candidate pair")
		}

		candidate := &entity.DuplicateCandidate{
			Pair:               pair,
			ConfidenceScore:    score.Confidence,
			NameSimilarity:     score.NameSimilarity,
			LocationSimilarity: score.LocationSimilarity,
			MatchCriteria:      score.MatchCriteria,
			Status:             entity.CandidateStatusPending,
		}
		if err := srv.candidateRepo.CreatePending(ctx, candidate); err != nil {
			return false, errors.Wrap(err, "failed to create candidate")
		}

		return true, nil
	}

	if existing.Status != entity.CandidateStatusPending {
		return false, nil
	}

	if err := srv.candidateRepo.UpdatePendingScores(ctx, existing.ID, score); err != nil {
		if errors.Is(err, repository.ErrCandidateNotPending) || errors.Is(err, repository.ErrCandidateNotFound) {
			// Reviewed or removed between the read and the write. Skip.
			return false, nil
		}

		return false, errors.Wrap(err, "failed to refresh candidate scores")
	}

	return true, nil
}

func (srv *scannerService) loadScanRun(ctx context.Context, id uuid.UUID) *entity.ScanRun {
	if id == uuid.Nil {
		return nil
	}

	run, err := srv.scanRunRepo.FindByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Scan run not found, proceeding without bookkeeping",
			slog.String("scan_run_id", id.String()),
			slog.Any("error", err),
		)

		return nil
	}

	return run
}

func (srv *scannerService) finishScanRun(ctx context.Context, run *entity.ScanRun, stats *usecase.ScanStats, scanErr error) {
	if run == nil {
		return
	}

	now := time.Now()
	run.Processed = stats.Processed
	run.DuplicatesFound = stats.DuplicatesFound
	run.DuplicatesStored = stats.DuplicatesStored
	run.FinishedAt = &now
	if scanErr != nil {
		run.Status = entity.ScanRunStatusFailed
		run.Error = scanErr.Error()
	} else {
		run.Status = entity.ScanRunStatusCompleted
	}

	if err := srv.scanRunRepo.Update(ctx, run); err != nil {
		srv.log(ctx).Error("Failed to update scan run",
			slog.String("scan_run_id", run.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Scan run recorded",
		slog.String("scan_run_id", run.ID.String()),
		slog.String("status", string(run.Status)),
		slog.String("duration", util.FormatDuration(now.Sub(run.StartedAt))),
	)
}

// scorerConfig builds the similarity configuration from the application
// config, falling back to defaults for unset values.
func (srv *scannerService) scorerConfig() similarity.Config {
	return scorerConfigFrom(srv.config)
}

func scorerConfigFrom(cfg *config.Config) similarity.Config {
	scorerCfg := similarity.DefaultConfig()
	if cfg == nil || cfg.Dedup == nil {
		return scorerCfg
	}

	dedup := cfg.Dedup
	if dedup.NameWeight > 0 {
		scorerCfg.NameWeight = dedup.NameWeight
	}
	if dedup.LocationWeight > 0 {
		scorerCfg.LocationWeight = dedup.LocationWeight
	}
	if dedup.SameCityScore > 0 {
		scorerCfg.SameCityScore = dedup.SameCityScore
	}
	if dedup.MaxDistanceMeters > 0 {
		scorerCfg.MaxDistanceMeters = dedup.MaxDistanceMeters
	}
	if dedup.NearbyThresholdMeters > 0 {
		scorerCfg.NearbyThresholdMeters = dedup.NearbyThresholdMeters
	}
	if dedup.SimilarNameThreshold > 0 {
		scorerCfg.SimilarNameThreshold = dedup.SimilarNameThreshold
	}

	return scorerCfg
}
