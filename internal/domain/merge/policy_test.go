package merge

import (
	"testing"
	"time"

	"quizmap/internal/domain/entity"
	"quizmap/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridableField(t *testing.T) {
	f, err := ParseOverridableField("website")
	require.NoError(t, err)
	assert.Equal(t, FieldWebsite, f)

	_, err = ParseOverridableField("slug")
	assert.ErrorIs(t, err, ErrFieldNotOverridable)

	_, err = ParseOverridableField("")
	assert.ErrorIs(t, err, ErrFieldNotOverridable)
}

func TestParseOverridableFields_FirstInvalidFails(t *testing.T) {
	fields, err := ParseOverridableFields([]string{"phone", "address"})
	require.NoError(t, err)
	assert.Equal(t, []OverridableField{FieldPhone, FieldAddress}, fields)

	_, err = ParseOverridableFields([]string{"phone", "name"})
	assert.True(t, errors.Is(err, ErrFieldNotOverridable))
}

func TestChoosePrimary_OlderRecordWins(t *testing.T) {
	older := &entity.Venue{ID: uuid.New(), CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	newer := &entity.Venue{ID: uuid.New(), CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	p, s := ChoosePrimary(older, newer)
	assert.Same(t, older, p)
	assert.Same(t, newer, s)

	// Order of arguments must not change the outcome.
	p, s = ChoosePrimary(newer, older)
	assert.Same(t, older, p)
	assert.Same(t, newer, s)
}

func TestChoosePrimary_SlugBreaksCreationTie(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	withSlug := &entity.Venue{ID: uuid.New(), Slug: "the-crown-leeds", CreatedAt: created}
	noSlug := &entity.Venue{ID: uuid.New(), CreatedAt: created}

	p, _ := ChoosePrimary(noSlug, withSlug)
	assert.Same(t, withSlug, p)
}

func TestChoosePrimary_StableOnFullTie(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a := &entity.Venue{ID: uuid.New(), Slug: "a", CreatedAt: created}
	b := &entity.Venue{ID: uuid.New(), Slug: "b", CreatedAt: created}

	p1, _ := ChoosePrimary(a, b)
	p2, _ := ChoosePrimary(b, a)
	assert.Same(t, p1, p2)
}

func TestApplyFieldPolicy_DefaultFillsGapsOnly(t *testing.T) {
	primary := &entity.Venue{
		Slug:    "the-crown-leeds",
		Website: "https://thecrownleeds.co.uk",
		Phone:   "",
	}
	secondary := &entity.Venue{
		Slug:    "crown-leeds-2",
		Website: "https://scraped.example/crown",
		Phone:   "0113 244 0000",
	}

	taken := ApplyFieldPolicy(primary, secondary, nil)

	assert.Equal(t, "https://thecrownleeds.co.uk", primary.Website)
	assert.Equal(t, "0113 244 0000", primary.Phone)
	assert.Equal(t, "the-crown-leeds", primary.Slug)
	assert.Equal(t, []string{"phone"}, taken)
}

func TestApplyFieldPolicy_OverrideFlipsDirection(t *testing.T) {
	primary := &entity.Venue{Website: "https://old.example"}
	secondary := &entity.Venue{Website: "https://fresh.example"}

	taken := ApplyFieldPolicy(primary, secondary, []OverridableField{FieldWebsite})

	assert.Equal(t, "https://fresh.example", primary.Website)
	assert.Equal(t, []string{"website"}, taken)
}

func TestApplyFieldPolicy_OverrideWithEqualValuesNotRecorded(t *testing.T) {
	primary := &entity.Venue{Website: "https://same.example"}
	secondary := &entity.Venue{Website: "https://same.example"}

	taken := ApplyFieldPolicy(primary, secondary, []OverridableField{FieldWebsite})
	assert.Empty(t, taken)
}

func TestCombineImages_DeDupedBySourceURL(t *testing.T) {
	venueID := uuid.New()
	shared := &entity.VenueImage{VenueID: venueID, SourceURL: "https://img.example/a.jpg"}
	primaryOnly := &entity.VenueImage{VenueID: venueID, SourceURL: "https://img.example/b.jpg"}
	secondaryOnly := &entity.VenueImage{SourceURL: "https://img.example/c.jpg"}
	secondaryDup := &entity.VenueImage{SourceURL: "https://img.example/a.jpg"}

	combined := CombineImages(
		[]*entity.VenueImage{shared, primaryOnly},
		[]*entity.VenueImage{secondaryDup, secondaryOnly},
	)

	require.Len(t, combined, 3)
	assert.Equal(t, "https://img.example/a.jpg", combined[0].SourceURL)
	assert.Equal(t, "https://img.example/b.jpg", combined[1].SourceURL)
	assert.Equal(t, "https://img.example/c.jpg", combined[2].SourceURL)
	for i, img := range combined {
		assert.Equal(t, i, img.Position)
	}
}

func TestCombineImages_ImagesWithoutIdentityNeverDropped(t *testing.T) {
	a := &entity.VenueImage{SourceURL: ""}
	b := &entity.VenueImage{SourceURL: ""}

	combined := CombineImages([]*entity.VenueImage{a}, []*entity.VenueImage{b})
	assert.Len(t, combined, 2)
}
