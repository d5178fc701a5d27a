package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"quizmap/config"
	"quizmap/internal/domain/entity"
	"quizmap/internal/domain/repository"
	"quizmap/internal/domain/service"
	mockRepo "quizmap/internal/mocks/repository"
	mockSvc "quizmap/internal/mocks/service"
	"quizmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Dedup: &config.DedupConfig{
			MinConfidence:        0.75,
			BatchSize:            50,
			BlockingRadiusMeters: 150,
		},
	}
}

func newScannerForTest(t *testing.T) (usecase.ScannerUsecase, *mockRepo.MockVenueRepository, *mockRepo.MockDuplicateCandidateRepository, *mockRepo.MockScanRunRepository, *mockSvc.MockEventPublisher) {
	t.Helper()

	mockVenueRepo := mockRepo.NewMockVenueRepository(t)
	mockCandidateRepo := mockRepo.NewMockDuplicateCandidateRepository(t)
	mockScanRunRepo := mockRepo.NewMockScanRunRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewScannerService(ScannerServiceParams{
		VenueRepo:      mockVenueRepo,
		CandidateRepo:  mockCandidateRepo,
		ScanRunRepo:    mockScanRunRepo,
		EventPublisher: mockPublisher,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	return svc, mockVenueRepo, mockCandidateRepo, mockScanRunRepo, mockPublisher
}

// pairVenues returns two live venues whose ids are in canonical order, with
// identical names and postcodes so they score as certain duplicates.
func pairVenues() (*entity.Venue, *entity.Venue) {
	cityID := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	venue1 := &entity.Venue{
		ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:     "The Crown",
		Postcode: "LS1 4DY",
		CityID:   cityID,
	}
	venue2 := &entity.Venue{
		ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:     "The Crown",
		Postcode: "LS1 4DY",
		CityID:   cityID,
	}

	return venue1, venue2
}

func TestScannerService_TriggerScan_PublishesEvent(t *testing.T) {
	svc, _, _, mockScanRunRepo, mockPublisher := newScannerForTest(t)

	ctx := context.Background()
	runID := uuid.New()

	mockScanRunRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ScanRun")).
		RunAndReturn(func(_ context.Context, run *entity.ScanRun) error {
			run.ID = runID

			return nil
		})

	mockPublisher.EXPECT().
		PublishScanRequested(ctx, mock.AnythingOfType("*service.ScanRequestedEvent")).
		RunAndReturn(func(_ context.Context, event *service.ScanRequestedEvent) error {
			assert.Equal(t, runID, event.ScanRunID)
			assert.InDelta(t, 0.75, event.MinConfidence, 1e-9)
			assert.Equal(t, 50, event.BatchSize)
			assert.Equal(t, "admin@example.com", event.RequestedBy)

			return nil
		})

	run, err := svc.TriggerScan(ctx, &usecase.TriggerScanInput{RequestedBy: "admin@example.com"})
	require.NoError(t, err)
	assert.Equal(t, runID, run.ID)
	assert.Equal(t, entity.ScanRunStatusRunning, run.Status)
}

func TestScannerService_TriggerScan_PublishFailureMarksRunFailed(t *testing.T) {
	svc, _, _, mockScanRunRepo, mockPublisher := newScannerForTest(t)

	ctx := context.Background()

	mockScanRunRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ScanRun")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishScanRequested(ctx, mock.AnythingOfType("*service.ScanRequestedEvent")).
		Return(errors.New("broker unavailable"))

	mockScanRunRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ScanRun")).
		RunAndReturn(func(_ context.Context, run *entity.ScanRun) error {
			assert.Equal(t, entity.ScanRunStatusFailed, run.Status)
			assert.NotNil(t, run.FinishedAt)

			return nil
		})

	_, err := svc.TriggerScan(ctx, &usecase.TriggerScanInput{})
	require.Error(t, err)
}

func TestScannerService_GetScanRun_NotFound(t *testing.T) {
	svc, _, _, mockScanRunRepo, _ := newScannerForTest(t)

	ctx := context.Background()
	id := uuid.New()

	mockScanRunRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrScanRunNotFound)

	_, err := svc.GetScanRun(ctx, id)
	require.Error(t, err)
}

func TestScannerService_Scan_StoresNewPair(t *testing.T) {
	svc, mockVenueRepo, mockCandidateRepo, _, _ := newScannerForTest(t)

	ctx := context.Background()
	venue1, venue2 := pairVenues()
	pair := entity.NewVenuePair(venue1.ID, venue2.ID)

	mockCandidateRepo.EXPECT().
		DeleteOrphanedPending(ctx).
		Return(int64(0), nil)

	mockVenueRepo.EXPECT().
		ListLive(ctx, 0, 50).
		Return([]*entity.Venue{venue1, venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue1, 150.0).
		Return([]*entity.Venue{venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue2, 150.0).
		Return([]*entity.Venue{venue1}, nil)

	mockCandidateRepo.EXPECT().
		FindByPair(ctx, pair).
		Return(nil, repository.ErrCandidateNotFound)
	mockCandidateRepo.EXPECT().
		CreatePending(ctx, mock.AnythingOfType("*entity.DuplicateCandidate")).
		RunAndReturn(func(_ context.Context, candidate *entity.DuplicateCandidate) error {
			assert.Equal(t, pair, candidate.Pair)
			assert.InDelta(t, 1.0, candidate.ConfidenceScore, 1e-9)
			assert.Equal(t, entity.CandidateStatusPending, candidate.Status)

			return nil
		})

	stats, err := svc.Scan(ctx, &usecase.ScanInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.DuplicatesFound)
	assert.Equal(t, 1, stats.DuplicatesStored)
}

func TestScannerService_Scan_RefreshesPendingPair(t *testing.T) {
	svc, mockVenueRepo, mockCandidateRepo, _, _ := newScannerForTest(t)

	ctx := context.Background()
	venue1, venue2 := pairVenues()
	pair := entity.NewVenuePair(venue1.ID, venue2.ID)
	existing := &entity.DuplicateCandidate{
		ID:     uuid.New(),
		Pair:   pair,
		Status: entity.CandidateStatusPending,
	}

	mockCandidateRepo.EXPECT().
		DeleteOrphanedPending(ctx).
		Return(int64(0), nil)

	mockVenueRepo.EXPECT().
		ListLive(ctx, 0, 50).
		Return([]*entity.Venue{venue1, venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue1, 150.0).
		Return([]*entity.Venue{venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue2, 150.0).
		Return([]*entity.Venue{venue1}, nil)

	mockCandidateRepo.EXPECT().
		FindByPair(ctx, pair).
		Return(existing, nil)
	mockCandidateRepo.EXPECT().
		UpdatePendingScores(ctx, existing.ID, mock.AnythingOfType("entity.SimilarityScore")).
		Return(nil)

	stats, err := svc.Scan(ctx, &usecase.ScanInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DuplicatesFound)
	assert.Equal(t, 1, stats.DuplicatesStored)
}

func TestScannerService_Scan_NeverTouchesReviewedPair(t *testing.T) {
	svc, mockVenueRepo, mockCandidateRepo, _, _ := newScannerForTest(t)

	ctx := context.Background()
	venue1, venue2 := pairVenues()
	pair := entity.NewVenuePair(venue1.ID, venue2.ID)
	reviewedAt := time.Now()
	rejected := &entity.DuplicateCandidate{
		ID:         uuid.New(),
		Pair:       pair,
		Status:     entity.CandidateStatusRejected,
		ReviewedAt: &reviewedAt,
	}

	mockCandidateRepo.EXPECT().
		DeleteOrphanedPending(ctx).
		Return(int64(0), nil)

	mockVenueRepo.EXPECT().
		ListLive(ctx, 0, 50).
		Return([]*entity.Venue{venue1, venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue1, 150.0).
		Return([]*entity.Venue{venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue2, 150.0).
		Return([]*entity.Venue{venue1}, nil)

	// The rejected row is found and left alone. No create, no update.
	mockCandidateRepo.EXPECT().
		FindByPair(ctx, pair).
		Return(rejected, nil)

	stats, err := svc.Scan(ctx, &usecase.ScanInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DuplicatesFound)
	assert.Equal(t, 0, stats.DuplicatesStored)
}

func TestScannerService_Scan_ClearExistingDeletesOnlyPending(t *testing.T) {
	svc, mockVenueRepo, mockCandidateRepo, _, _ := newScannerForTest(t)

	ctx := context.Background()

	mockCandidateRepo.EXPECT().
		DeleteAllPending(ctx).
		Return(int64(4), nil)
	mockCandidateRepo.EXPECT().
		DeleteOrphanedPending(ctx).
		Return(int64(0), nil)

	mockVenueRepo.EXPECT().
		ListLive(ctx, 0, 50).
		Return(nil, nil)

	stats, err := svc.Scan(ctx, &usecase.ScanInput{ClearExisting: true})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Processed)
}

func TestScannerService_Scan_DiscardsBelowThreshold(t *testing.T) {
	svc, mockVenueRepo, mockCandidateRepo, _, _ := newScannerForTest(t)

	ctx := context.Background()
	venue1, venue2 := pairVenues()
	venue2.Name = "Completely Different Bistro"
	venue2.Postcode = "M1 1AA"
	venue2.CityID = uuid.New()

	mockCandidateRepo.EXPECT().
		DeleteOrphanedPending(ctx).
		Return(int64(0), nil)

	mockVenueRepo.EXPECT().
		ListLive(ctx, 0, 50).
		Return([]*entity.Venue{venue1, venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue1, 150.0).
		Return([]*entity.Venue{venue2}, nil)
	mockVenueRepo.EXPECT().
		FindCandidatesNear(ctx, venue2, 150.0).
		Return([]*entity.Venue{venue1}, nil)

	stats, err := svc.Scan(ctx, &usecase.ScanInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DuplicatesFound)
	assert.Equal(t, 0, stats.DuplicatesStored)
}

func TestScannerService_Scan_RecordsRunOutcome(t *testing.T) {
	svc, mockVenueRepo, mockCandidateRepo, mockScanRunRepo, _ := newScannerForTest(t)

	ctx := context.Background()
	runID := uuid.New()
	run := &entity.ScanRun{ID: runID, Status: entity.ScanRunStatusRunning}

	mockScanRunRepo.EXPECT().
		FindByID(ctx, runID).
		Return(run, nil)
	mockCandidateRepo.EXPECT().
		DeleteOrphanedPending(ctx).
		Return(int64(0), nil)

	mockVenueRepo.EXPECT().
		ListLive(ctx, 0, 50).
		Return(nil, nil)
	mockScanRunRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ScanRun")).
		RunAndReturn(func(_ context.Context, updated *entity.ScanRun) error {
			assert.Equal(t, entity.ScanRunStatusCompleted, updated.Status)
			assert.NotNil(t, updated.FinishedAt)

			return nil
		})

	_, err := svc.Scan(ctx, &usecase.ScanInput{ScanRunID: runID})
	require.NoError(t, err)
}

func TestScannerService_Scan_SweepsOrphanedCandidates(t *testing.T) {
	svc, mockVenueRepo, mockCandidateRepo, _, _ := newScannerForTest(t)

	ctx := context.Background()

	// Candidates referencing venues deleted upstream are swept before scoring.
	mockCandidateRepo.EXPECT().
		DeleteOrphanedPending(ctx).
		Return(int64(3), nil)
	mockVenueRepo.EXPECT().
		ListLive(ctx, 0, 50).
		Return(nil, nil)

	stats, err := svc.Scan(ctx, &usecase.ScanInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Processed)
}
