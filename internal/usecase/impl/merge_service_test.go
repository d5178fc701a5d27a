package impl

import (
	"context"
	"testing"
	"time"

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

type mergeMocks struct {
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	venueRepo     *mockRepo.MockVenueRepository
	eventRepo     *mockRepo.MockEventRepository
	candidateRepo *mockRepo.MockDuplicateCandidateRepository
	auditRepo     *mockRepo.MockMergeAuditRepository
}

func newMergeForTest(t *testing.T) (usecase.MergeUsecase, *mergeMocks) {
	t.Helper()

	mocks := &mergeMocks{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		venueRepo:     mockRepo.NewMockVenueRepository(t),
		eventRepo:     mockRepo.NewMockEventRepository(t),
		candidateRepo: mockRepo.NewMockDuplicateCandidateRepository(t),
		auditRepo:     mockRepo.NewMockMergeAuditRepository(t),
	}

	svc := NewMergeService(MergeServiceParams{
		TxManager: mocks.txManager,
		Config:    testConfig(),
		Logger:    testLogger(),
	})

	return svc, mocks
}

// expectTransaction wires the transaction manager mock to run the callback
// against the mock repository factory, so errors propagate like a rollback.
func (m *mergeMocks) expectTransaction(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func mergePairVenues() (*entity.Venue, *entity.Venue) {
	cityID := uuid.New()
	primary := &entity.Venue{
		ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:     "The Crown",
		Slug:     "the-crown",
		Postcode: "LS1 4DY",
		CityID:   cityID,
		Images: []*entity.VenueImage{
			{SourceURL: "https://img.example.com/a.jpg", Position: 0},
		},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	secondary := &entity.Venue{
		ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:     "The Crown Pub",
		Slug:     "the-crown-pub",
		Postcode: "LS1 4DY",
		CityID:   cityID,
		Website:  "https://crownpub.example.com",
		Images: []*entity.VenueImage{
			{SourceURL: "https://img.example.com/a.jpg", Position: 0},
			{SourceURL: "https://img.example.com/b.jpg", Position: 1},
		},
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	return primary, secondary
}

func TestMergeService_Merge_ConsolidatesSecondaryIntoPrimary(t *testing.T) {
	svc, mocks := newMergeForTest(t)

	ctx := context.Background()
	primary, secondary := mergePairVenues()
	pair := entity.NewVenuePair(primary.ID, secondary.ID)
	candidate := &entity.DuplicateCandidate{
		ID:     uuid.New(),
		Pair:   pair,
		Status: entity.CandidateStatusPending,
	}

	mocks.expectTransaction(ctx)
	mocks.factory.EXPECT().VenueRepo().Return(mocks.venueRepo)
	mocks.factory.EXPECT().EventRepo().Return(mocks.eventRepo)
	mocks.factory.EXPECT().CandidateRepo().Return(mocks.candidateRepo)
	mocks.factory.EXPECT().MergeAuditRepo().Return(mocks.auditRepo)

	mocks.venueRepo.EXPECT().FindByID(ctx, primary.ID).Return(primary, nil)
	mocks.venueRepo.EXPECT().FindByID(ctx, secondary.ID).Return(secondary, nil)
	mocks.candidateRepo.EXPECT().FindByPair(ctx, pair).Return(candidate, nil)
	mocks.eventRepo.EXPECT().MigrateVenue(ctx, secondary.ID, primary.ID).Return(int64(3), nil)
	mocks.venueRepo.EXPECT().
		ReplaceImages(ctx, primary.ID, mock.AnythingOfType("[]*entity.VenueImage")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, images []*entity.VenueImage) error {
			// Shared image de-duped by source URL, secondary extra appended.
			require.Len(t, images, 2)
			assert.Equal(t, "https://img.example.com/a.jpg", images[0].SourceURL)
			assert.Equal(t, "https://img.example.com/b.jpg", images[1].SourceURL)

			return nil
		})
	mocks.venueRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Venue")).
		RunAndReturn(func(_ context.Context, venue *entity.Venue) error {
			assert.Equal(t, primary.ID, venue.ID)
			// Gap filled from the secondary without an explicit override.
			assert.Equal(t, "https://crownpub.example.com", venue.Website)
			// Primary keeps its own name and slug.
			assert.Equal(t, "The Crown", venue.Name)
			assert.Equal(t, "the-crown", venue.Slug)

			return nil
		})
	mocks.venueRepo.EXPECT().SoftDelete(ctx, secondary.ID, primary.ID).Return(nil)
	mocks.candidateRepo.EXPECT().
		UpdateStatusIfPending(ctx, candidate.ID, entity.CandidateStatusMerged, "reviewer@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)
	mocks.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MergeAudit")).
		RunAndReturn(func(_ context.Context, audit *entity.MergeAudit) error {
			assert.Equal(t, primary.ID, audit.PrimaryVenueID)
			assert.Equal(t, secondary.ID, audit.SecondaryVenueID)
			assert.Equal(t, 3, audit.EventsMigrated)
			assert.Equal(t, 2, audit.ImagesCombined)
			assert.Equal(t, "reviewer@example.com", audit.PerformedBy)

			return nil
		})

	output, err := svc.Merge(ctx, &usecase.MergeInput{
		PrimaryID:   primary.ID,
		SecondaryID: secondary.ID,
		PerformedBy: "reviewer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, output.EventsMigrated)
	assert.Equal(t, 2, output.ImagesCombined)
	assert.Contains(t, output.OverriddenFields, "website")
}

func TestMergeService_Merge_RejectsSameVenue(t *testing.T) {
	svc, _ := newMergeForTest(t)

	id := uuid.New()
	_, err := svc.Merge(context.Background(), &usecase.MergeInput{
		PrimaryID:   id,
		SecondaryID: id,
	})
	require.ErrorIs(t, err, domainerrors.ErrSamePairVenue)
}

func TestMergeService_Merge_RejectsUnknownOverrideField(t *testing.T) {
	svc, _ := newMergeForTest(t)

	_, err := svc.Merge(context.Background(), &usecase.MergeInput{
		PrimaryID:      uuid.New(),
		SecondaryID:    uuid.New(),
		FieldOverrides: []string{"slug"},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrFieldNotOverridable.ErrorCode(), appErr.ErrorCode())
}

func TestMergeService_Merge_ConflictWhenAlreadyReviewed(t *testing.T) {
	svc, mocks := newMergeForTest(t)

	ctx := context.Background()
	primary, secondary := mergePairVenues()
	pair := entity.NewVenuePair(primary.ID, secondary.ID)
	reviewed := &entity.DuplicateCandidate{
		ID:     uuid.New(),
		Pair:   pair,
		Status: entity.CandidateStatusRejected,
	}

	mocks.expectTransaction(ctx)
	mocks.factory.EXPECT().VenueRepo().Return(mocks.venueRepo)
	mocks.factory.EXPECT().CandidateRepo().Return(mocks.candidateRepo)

	mocks.venueRepo.EXPECT().FindByID(ctx, primary.ID).Return(primary, nil)
	mocks.venueRepo.EXPECT().FindByID(ctx, secondary.ID).Return(secondary, nil)
	mocks.candidateRepo.EXPECT().FindByPair(ctx, pair).Return(reviewed, nil)

	_, err := svc.Merge(ctx, &usecase.MergeInput{
		PrimaryID:   primary.ID,
		SecondaryID: secondary.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrCandidateAlreadyReviewed)
}

func TestMergeService_Merge_ConflictWhenConcurrentReviewerWins(t *testing.T) {
	svc, mocks := newMergeForTest(t)

	ctx := context.Background()
	primary, secondary := mergePairVenues()
	pair := entity.NewVenuePair(primary.ID, secondary.ID)
	candidate := &entity.DuplicateCandidate{
		ID:     uuid.New(),
		Pair:   pair,
		Status: entity.CandidateStatusPending,
	}

	mocks.expectTransaction(ctx)
	mocks.factory.EXPECT().VenueRepo().Return(mocks.venueRepo)
	mocks.factory.EXPECT().EventRepo().Return(mocks.eventRepo)
	mocks.factory.EXPECT().CandidateRepo().Return(mocks.candidateRepo)

	mocks.venueRepo.EXPECT().FindByID(ctx, primary.ID).Return(primary, nil)
	mocks.venueRepo.EXPECT().FindByID(ctx, secondary.ID).Return(secondary, nil)
	mocks.candidateRepo.EXPECT().FindByPair(ctx, pair).Return(candidate, nil)
	mocks.eventRepo.EXPECT().MigrateVenue(ctx, secondary.ID, primary.ID).Return(int64(2), nil)
	mocks.venueRepo.EXPECT().
		ReplaceImages(ctx, primary.ID, mock.AnythingOfType("[]*entity.VenueImage")).
		Return(nil)
	mocks.venueRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Venue")).Return(nil)
	mocks.venueRepo.EXPECT().SoftDelete(ctx, secondary.ID, primary.ID).Return(nil)

	// A concurrent reviewer resolved the pair between the pre-check and the
	// status guard. The error must escape the transaction so every prior
	// write in it rolls back; no audit row is attempted.
	mocks.candidateRepo.EXPECT().
		UpdateStatusIfPending(ctx, candidate.ID, entity.CandidateStatusMerged, "reviewer@example.com", mock.AnythingOfType("time.Time")).
		Return(repository.ErrCandidateNotPending)

	_, err := svc.Merge(ctx, &usecase.MergeInput{
		PrimaryID:   primary.ID,
		SecondaryID: secondary.ID,
		PerformedBy: "reviewer@example.com",
	})
	require.ErrorIs(t, err, domainerrors.ErrCandidateAlreadyReviewed)
}

func TestMergeService_Merge_FailsWhenSecondaryMissing(t *testing.T) {
	svc, mocks := newMergeForTest(t)

	ctx := context.Background()
	primary, secondary := mergePairVenues()

	mocks.expectTransaction(ctx)
	mocks.factory.EXPECT().VenueRepo().Return(mocks.venueRepo)

	mocks.venueRepo.EXPECT().FindByID(ctx, primary.ID).Return(primary, nil)
	mocks.venueRepo.EXPECT().FindByID(ctx, secondary.ID).Return(nil, repository.ErrVenueNotFound)

	_, err := svc.Merge(ctx, &usecase.MergeInput{
		PrimaryID:   primary.ID,
		SecondaryID: secondary.ID,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrVenueNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestMergeService_BatchMerge_AbortsWholeBatchOnFailure(t *testing.T) {
	svc, mocks := newMergeForTest(t)

	ctx := context.Background()
	primary, secondary := mergePairVenues()
	missing := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	pair := entity.NewVenuePair(primary.ID, secondary.ID)
	candidate := &entity.DuplicateCandidate{ID: uuid.New(), Pair: pair, Status: entity.CandidateStatusPending}

	mocks.expectTransaction(ctx)
	mocks.factory.EXPECT().VenueRepo().Return(mocks.venueRepo)
	mocks.factory.EXPECT().EventRepo().Return(mocks.eventRepo)
	mocks.factory.EXPECT().CandidateRepo().Return(mocks.candidateRepo)
	mocks.factory.EXPECT().MergeAuditRepo().Return(mocks.auditRepo)

	// First member succeeds.
	mocks.venueRepo.EXPECT().FindByID(ctx, primary.ID).Return(primary, nil)
	mocks.venueRepo.EXPECT().FindByID(ctx, secondary.ID).Return(secondary, nil)
	mocks.candidateRepo.EXPECT().FindByPair(ctx, pair).Return(candidate, nil)
	mocks.eventRepo.EXPECT().MigrateVenue(ctx, secondary.ID, primary.ID).Return(int64(0), nil)
	mocks.venueRepo.EXPECT().ReplaceImages(ctx, primary.ID, mock.Anything).Return(nil)
	mocks.venueRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	mocks.venueRepo.EXPECT().SoftDelete(ctx, secondary.ID, primary.ID).Return(nil)
	mocks.candidateRepo.EXPECT().
		UpdateStatusIfPending(ctx, candidate.ID, entity.CandidateStatusMerged, "reviewer@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)
	mocks.auditRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	// Second member fails, so Execute returns the error and nothing commits.
	mocks.venueRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrVenueNotFound)

	_, err := svc.BatchMerge(ctx, &usecase.BatchMergeInput{
		Pairs: []usecase.MergePair{
			{PrimaryID: primary.ID, SecondaryID: secondary.ID},
			{PrimaryID: missing, SecondaryID: uuid.MustParse("44444444-4444-4444-4444-444444444444")},
		},
		PerformedBy: "reviewer@example.com",
	})
	require.Error(t, err)
}

func TestMergeService_BatchMerge_RejectsEmptyBatch(t *testing.T) {
	svc, _ := newMergeForTest(t)

	_, err := svc.BatchMerge(context.Background(), &usecase.BatchMergeInput{})
	require.Error(t, err)
}
