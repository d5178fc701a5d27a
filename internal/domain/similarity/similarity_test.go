package similarity

import (
	"testing"

	"quizmap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVenue(name, postcode string, cityID uuid.UUID, lat, lon float64) *entity.Venue {
	return &entity.Venue{
		ID:        uuid.New(),
		Name:      name,
		Postcode:  postcode,
		CityID:    cityID,
		Latitude:  lat,
		Longitude: lon,
	}
}

func TestScore_ExactDuplicate(t *testing.T) {
	cityID := uuid.New()
	a := testVenue("The Crown", "LS1 4DY", cityID, 53.796, -1.545)
	b := testVenue("The Crown", "LS1 4DY", cityID, 53.796, -1.545)

	score := Score(a, b, DefaultConfig())

	assert.Equal(t, 1.0, score.NameSimilarity)
	assert.Equal(t, 1.0, score.LocationSimilarity)
	assert.GreaterOrEqual(t, score.Confidence, 0.90)
	assert.Equal(t, entity.ConfidenceBandHigh, score.Band())
	assert.Contains(t, score.MatchCriteria, CriterionSameName)
	assert.Contains(t, score.MatchCriteria, CriterionSamePostcode)
}

func TestScore_NearMissName(t *testing.T) {
	cityID := uuid.New()
	a := testVenue("The Crown Pub", "LS1 4DY", cityID, 53.796, -1.545)
	b := testVenue("The Crown", "LS1 4DY", cityID, 53.796, -1.545)

	score := Score(a, b, DefaultConfig())

	assert.Equal(t, 1.0, score.LocationSimilarity)
	assert.Greater(t, score.NameSimilarity, 0.5)
	assert.Less(t, score.NameSimilarity, 1.0)
	assert.Equal(t, entity.ConfidenceBandMedium, score.Band())
}

func TestScore_Deterministic(t *testing.T) {
	cityID := uuid.New()
	a := testVenue("The Brudenell Social Club", "LS6 1HA", cityID, 53.810, -1.570)
	b := testVenue("Brudenell Social Club", "", cityID, 53.811, -1.571)

	first := Score(a, b, DefaultConfig())
	second := Score(a, b, DefaultConfig())

	assert.Equal(t, first, second)
}

func TestScore_Symmetric(t *testing.T) {
	cityID := uuid.New()
	a := testVenue("The Fenton", "LS2 9JT", cityID, 53.804, -1.550)
	b := testVenue("Fenton Bar", "LS2 3ED", cityID, 53.805, -1.551)

	ab := Score(a, b, DefaultConfig())
	ba := Score(b, a, DefaultConfig())

	assert.Equal(t, ab.NameSimilarity, ba.NameSimilarity)
	assert.Equal(t, ab.LocationSimilarity, ba.LocationSimilarity)
	assert.Equal(t, ab.Confidence, ba.Confidence)
}

func TestScore_MissingPostcodeFallsBackToCity(t *testing.T) {
	cityID := uuid.New()
	a := testVenue("The Adelphi", "", cityID, 0, 0)
	b := testVenue("Adelphi Hotel", "", cityID, 0, 0)

	score := Score(a, b, DefaultConfig())

	assert.Equal(t, DefaultConfig().SameCityScore, score.LocationSimilarity)
	assert.Contains(t, score.MatchCriteria, CriterionSameCity)
}

func TestScore_DifferentCityNoLocation(t *testing.T) {
	a := testVenue("The Angel", "", uuid.New(), 0, 0)
	b := testVenue("The Angel", "", uuid.New(), 0, 0)

	score := Score(a, b, DefaultConfig())

	assert.Equal(t, 1.0, score.NameSimilarity)
	assert.Equal(t, 0.0, score.LocationSimilarity)
	assert.Equal(t, entity.ConfidenceBandLow, score.Band())
}

func TestScore_NearbyVenuesGainDistanceDecay(t *testing.T) {
	// Same street, about 100m apart, no usable postcodes, different city rows
	// (e.g. one scraper filed the venue under a suburb).
	a := testVenue("The Packhorse", "", uuid.New(), 53.8060, -1.5530)
	b := testVenue("Packhorse", "", uuid.New(), 53.8069, -1.5530)

	score := Score(a, b, DefaultConfig())

	assert.Greater(t, score.LocationSimilarity, 0.8)
	assert.Contains(t, score.MatchCriteria, CriterionNearby)
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, NameSimilarity("The  Crown ", "the crown"))
	assert.Equal(t, 0.0, NameSimilarity("", "The Crown"))

	partial := NameSimilarity("The Crown Pub", "The Crown")
	require.Greater(t, partial, 0.6)
	require.Less(t, partial, 1.0)

	assert.Less(t, NameSimilarity("Wetherspoons", "The Crown"), 0.4)
}

func TestNormalizePostcode(t *testing.T) {
	assert.Equal(t, "LS14DY", NormalizePostcode(" ls1 4dy "))
	assert.Equal(t, "", NormalizePostcode("   "))
}

func TestBandOf(t *testing.T) {
	assert.Equal(t, entity.ConfidenceBandHigh, entity.BandOf(0.90))
	assert.Equal(t, entity.ConfidenceBandMedium, entity.BandOf(0.89))
	assert.Equal(t, entity.ConfidenceBandMedium, entity.BandOf(0.75))
	assert.Equal(t, entity.ConfidenceBandLow, entity.BandOf(0.74))
}
