// Package similarity computes name and location similarity for venue pairs.
// All functions are pure and deterministic: scoring the same inputs always
// yields the same result, and Score(a, b) == Score(b, a).
package similarity

import (
	"math"
	"strings"

	"quizmap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Match criteria tags attached to scored pairs. They explain why a pair
// matched and carry no scoring weight themselves.
const (
	CriterionSameName     = "same_name"
	CriterionSimilarName  = "similar_name"
	CriterionSamePostcode = "same_postcode"
	CriterionSameCity     = "same_city"
	CriterionNearby       = "nearby"
)

// Config holds the scorer weights and distance parameters.
type Config struct {
	// NameWeight and LocationWeight combine the two sub-scores into the
	// confidence score. They should sum to 1.
	NameWeight     float64
	LocationWeight float64

	// SameCityScore is the location similarity floor for two venues in the
	// same city when their postcodes do not agree.
	SameCityScore float64

	// MaxDistanceMeters bounds the geodesic distance decay: venues farther
	// apart contribute no location similarity.
	MaxDistanceMeters float64

	// NearbyThresholdMeters is the distance under which the "nearby"
	// criterion fires.
	NearbyThresholdMeters float64

	// SimilarNameThreshold is the name similarity above which the
	// "similar_name" criterion fires.
	SimilarNameThreshold float64
}

// DefaultConfig returns the production scorer configuration.
func DefaultConfig() Config {
	return Config{
		NameWeight:            0.55,
		LocationWeight:        0.45,
		SameCityScore:         0.75,
		MaxDistanceMeters:     2000,
		NearbyThresholdMeters: 150,
		SimilarNameThreshold:  0.80,
	}
}

// distanceDecayCeiling caps the distance-based location score so that only an
// exact postcode match can yield a full 1.0.
const distanceDecayCeiling = 0.9

// Score computes the similarity of two venue snapshots.
func Score(a, b *entity.Venue, cfg Config) entity.SimilarityScore {
	nameScore := NameSimilarity(a.Name, b.Name)
	locScore, locCriteria := locationSimilarity(a, b, cfg)

	criteria := make([]string, 0, 4)
	switch {
	case nameScore == 1:
		criteria = append(criteria, CriterionSameName)
	case nameScore >= cfg.SimilarNameThreshold:
		criteria = append(criteria, CriterionSimilarName)
	}
	criteria = append(criteria, locCriteria...)

	confidence := cfg.NameWeight*nameScore + cfg.LocationWeight*locScore

	return entity.SimilarityScore{
		NameSimilarity:     nameScore,
		LocationSimilarity: locScore,
		Confidence:         confidence,
		MatchCriteria:      criteria,
	}
}

// NameSimilarity returns a [0,1] similarity for two venue names.
// Names equal after normalization score 1.0; otherwise the score is the larger
// of the normalized Levenshtein similarity and the trigram Jaccard similarity,
// so both short edits and token reorderings are tolerated.
func NameSimilarity(a, b string) float64 {
	an := NormalizeName(a)
	bn := NormalizeName(b)

	if an == "" || bn == "" {
		return 0
	}
	if an == bn {
		return 1
	}

	return math.Max(levenshteinSimilarity(an, bn), trigramJaccard(an, bn))
}

// NormalizeName lower-cases a venue name and collapses runs of whitespace.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizePostcode upper-cases a postcode and strips all spaces, so
// "ls1 4dy" and "LS14DY" compare equal.
func NormalizePostcode(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// locationSimilarity scores how likely two venues share a physical location.
// An exact postcode match is decisive. Without one the score falls back to a
// distance decay bounded by MaxDistanceMeters, floored at SameCityScore when
// both venues belong to the same city. Venues lacking postcode and coordinates
// degrade to city-level agreement only.
func locationSimilarity(a, b *entity.Venue, cfg Config) (float64, []string) {
	pa := NormalizePostcode(a.Postcode)
	pb := NormalizePostcode(b.Postcode)

	if pa != "" && pa == pb {
		criteria := []string{CriterionSamePostcode}
		if nearby, d := withinDistance(a, b, cfg.NearbyThresholdMeters); nearby && d >= 0 {
			criteria = append(criteria, CriterionNearby)
		}

		return 1, criteria
	}

	var score float64
	var criteria []string

	if a.CityID != uuid.Nil && a.CityID == b.CityID {
		score = cfg.SameCityScore
		criteria = append(criteria, CriterionSameCity)
	}

	if a.HasCoordinates() && b.HasCoordinates() && cfg.MaxDistanceMeters > 0 {
		d := Distance(a, b)
		if d <= cfg.MaxDistanceMeters {
			decay := distanceDecayCeiling * (1 - d/cfg.MaxDistanceMeters)
			score = math.Max(score, decay)
		}
		if d <= cfg.NearbyThresholdMeters {
			criteria = append(criteria, CriterionNearby)
		}
	}

	return score, criteria
}

// Distance returns the geodesic distance between two venues in meters.
func Distance(a, b *entity.Venue) float64 {
	return geo.Distance(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)
}

func withinDistance(a, b *entity.Venue, meters float64) (bool, float64) {
	if !a.HasCoordinates() || !b.HasCoordinates() {
		return false, -1
	}
	d := Distance(a, b)

	return d <= meters, d
}

// levenshteinSimilarity converts the edit distance of two strings into a
// [0,1] similarity normalized by the longer string's rune length.
func levenshteinSimilarity(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	denom := max(len(ar), len(br))
	if denom == 0 {
		return 1
	}

	return math.Max(0, 1-float64(levenshteinDistance(ar, br))/float64(denom))
}

func levenshteinDistance(ar, br []rune) int {
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(br)+1)
	for i, ca := range ar {
		curr[0] = i + 1
		for j, cb := range br {
			ins := curr[j] + 1
			del := prev[j+1] + 1
			sub := prev[j]
			if ca != cb {
				sub++
			}
			curr[j+1] = min(ins, del, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

// trigramJaccard computes the Jaccard similarity of the rune trigram sets of
// two strings. Strings shorter than three runes count as a single token.
func trigramJaccard(a, b string) float64 {
	as := trigramSet(a)
	bs := trigramSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}

	intersection := 0
	for t := range as {
		if _, ok := bs[t]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}

	union := len(as) + len(bs) - intersection

	return float64(intersection) / float64(union)
}

func trigramSet(s string) map[string]struct{} {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) < 3 {
		return map[string]struct{}{string(runes): {}}
	}

	set := make(map[string]struct{}, len(runes)-2)
	for i := 0; i <= len(runes)-3; i++ {
		set[string(runes[i:i+3])] = struct{}{}
	}

	return set
}
