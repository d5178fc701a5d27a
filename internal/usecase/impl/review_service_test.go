package impl

import (
	"context"
	"testing"

	"quizmap/internal/domain/entity"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/domain/repository"
	mockRepo "quizmap/internal/mocks/repository"
	"quizmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	venueRepo     *mockRepo.MockVenueRepository
	eventRepo     *mockRepo.MockEventRepository
	candidateRepo *mockRepo.MockDuplicateCandidateRepository
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
}

func newReviewForTest(t *testing.T) (usecase.ReviewUsecase, *reviewMocks) {
	t.Helper()

	mocks := &reviewMocks{
		venueRepo:     mockRepo.NewMockVenueRepository(t),
		eventRepo:     mockRepo.NewMockEventRepository(t),
		candidateRepo: mockRepo.NewMockDuplicateCandidateRepository(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
	}

	svc := NewReviewService(ReviewServiceParams{
		VenueRepo:     mocks.venueRepo,
		EventRepo:     mocks.eventRepo,
		CandidateRepo: mocks.candidateRepo,
		TxManager:     mocks.txManager,
		Config:        testConfig(),
		Logger:        testLogger(),
	})

	return svc, mocks
}

func TestReviewService_ListCandidates_ResolvesVenueNames(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	venue1, venue2 := pairVenues()
	venue2.Name = "The Crown Pub"
	pair := entity.NewVenuePair(venue1.ID, venue2.ID)
	candidate := &entity.DuplicateCandidate{
		ID:              uuid.New(),
		Pair:            pair,
		ConfidenceScore: 0.83,
		Status:          entity.CandidateStatusPending,
	}

	mocks.candidateRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.CandidateFilter")).
		Return([]*entity.DuplicateCandidate{candidate}, nil)
	mocks.venueRepo.EXPECT().
		FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.Venue{venue1, venue2}, nil)

	summaries, err := svc.ListCandidates(ctx, &usecase.ListCandidatesInput{Band: entity.ConfidenceBandMedium})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "The Crown", summaries[0].Venue1Name)
	assert.Equal(t, "The Crown Pub", summaries[0].Venue2Name)
	assert.Equal(t, entity.ConfidenceBandMedium, summaries[0].Band)
}

func TestReviewService_Statistics_Passthrough(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	stats := &repository.CandidateStatistics{Total: 7, HighConfidence: 2, AvgConfidence: 0.88}

	mocks.candidateRepo.EXPECT().Statistics(ctx).Return(stats, nil)

	got, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestReviewService_GetComparison_RecomputesScore(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	venue1, venue2 := pairVenues()
	pair := entity.NewVenuePair(venue1.ID, venue2.ID)
	candidate := &entity.DuplicateCandidate{ID: uuid.New(), Pair: pair, Status: entity.CandidateStatusPending}

	mocks.venueRepo.EXPECT().FindByID(ctx, venue1.ID).Return(venue1, nil)
	mocks.venueRepo.EXPECT().FindByID(ctx, venue2.ID).Return(venue2, nil)
	mocks.candidateRepo.EXPECT().FindByPair(ctx, pair).Return(candidate, nil)
	mocks.eventRepo.EXPECT().FindByVenue(ctx, venue1.ID).Return([]*entity.Event{{ID: uuid.New()}}, nil)
	mocks.eventRepo.EXPECT().FindByVenue(ctx, venue2.ID).Return(nil, nil)

	detail, err := svc.GetComparison(ctx, venue1.ID, venue2.ID)
	require.NoError(t, err)
	assert.False(t, detail.Resolved)
	require.NotNil(t, detail.Score)
	// Identical names and postcodes score as certain duplicates.
	assert.InDelta(t, 1.0, detail.Score.Confidence, 1e-9)
	assert.Len(t, detail.Venue1Events, 1)
	assert.NotEqual(t, uuid.Nil, detail.SuggestedPrimary)
}

func TestReviewService_GetComparison_ReconcilesMissingVenue(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	venue1, _ := pairVenues()
	missingID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	mocks.venueRepo.EXPECT().FindByID(ctx, venue1.ID).Return(venue1, nil)
	mocks.venueRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrVenueNotFound)
	mocks.candidateRepo.EXPECT().DeleteForVenue(ctx, missingID).Return(int64(2), nil)

	detail, err := svc.GetComparison(ctx, venue1.ID, missingID)
	require.NoError(t, err)
	assert.True(t, detail.Resolved)
	assert.Nil(t, detail.Candidate)
}

func TestReviewService_Reject_ByPair(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	venue1ID := uuid.New()
	venue2ID := uuid.New()
	pair := entity.NewVenuePair(venue1ID, venue2ID)
	candidate := &entity.DuplicateCandidate{ID: uuid.New(), Pair: pair, Status: entity.CandidateStatusPending}

	mocks.candidateRepo.EXPECT().FindByPair(ctx, pair).Return(candidate, nil)
	mocks.candidateRepo.EXPECT().
		UpdateStatusIfPending(ctx, candidate.ID, entity.CandidateStatusRejected, "reviewer@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)

	err := svc.Reject(ctx, &usecase.RejectInput{
		Venue1ID:   &venue1ID,
		Venue2ID:   &venue2ID,
		ReviewedBy: "reviewer@example.com",
	})
	require.NoError(t, err)
}

func TestReviewService_Reject_ConflictWhenAlreadyReviewed(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	candidateID := uuid.New()

	mocks.candidateRepo.EXPECT().
		UpdateStatusIfPending(ctx, candidateID, entity.CandidateStatusRejected, "reviewer@example.com", mock.AnythingOfType("time.Time")).
		Return(repository.ErrCandidateNotPending)

	err := svc.Reject(ctx, &usecase.RejectInput{
		CandidateID: &candidateID,
		ReviewedBy:  "reviewer@example.com",
	})
	require.ErrorIs(t, err, domainerrors.ErrCandidateAlreadyReviewed)
}

func TestReviewService_Reject_RequiresIdentity(t *testing.T) {
	svc, _ := newReviewForTest(t)

	err := svc.Reject(context.Background(), &usecase.RejectInput{ReviewedBy: "reviewer@example.com"})
	require.Error(t, err)
}

func TestReviewService_BatchReject_AbortsWholeBatchOnFailure(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	okID := uuid.New()
	reviewedID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mocks.factory)
		})
	mocks.factory.EXPECT().CandidateRepo().Return(mocks.candidateRepo)

	mocks.candidateRepo.EXPECT().
		UpdateStatusIfPending(ctx, okID, entity.CandidateStatusRejected, "reviewer@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)
	mocks.candidateRepo.EXPECT().
		UpdateStatusIfPending(ctx, reviewedID, entity.CandidateStatusRejected, "reviewer@example.com", mock.AnythingOfType("time.Time")).
		Return(repository.ErrCandidateNotPending)

	_, err := svc.BatchReject(ctx, &usecase.BatchRejectInput{
		CandidateIDs: []uuid.UUID{okID, reviewedID},
		ReviewedBy:   "reviewer@example.com",
	})
	require.ErrorIs(t, err, domainerrors.ErrCandidateAlreadyReviewed)
}

func TestReviewService_BatchReject_Success(t *testing.T) {
	svc, mocks := newReviewForTest(t)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mocks.factory)
		})
	mocks.factory.EXPECT().CandidateRepo().Return(mocks.candidateRepo)

	for _, id := range ids {
		mocks.candidateRepo.EXPECT().
			UpdateStatusIfPending(ctx, id, entity.CandidateStatusRejected, "reviewer@example.com", mock.AnythingOfType("time.Time")).
			Return(nil)
	}

	result, err := svc.BatchReject(ctx, &usecase.BatchRejectInput{
		CandidateIDs: ids,
		ReviewedBy:   "reviewer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
}
