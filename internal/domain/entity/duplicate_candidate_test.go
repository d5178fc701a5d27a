package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewVenuePair_CanonicalOrder(t *testing.T) {
	smaller := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	larger := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	forward := NewVenuePair(smaller, larger)
	reversed := NewVenuePair(larger, smaller)

	assert.Equal(t, forward, reversed)
	assert.Equal(t, smaller, forward.Venue1)
	assert.Equal(t, larger, forward.Venue2)
}

func TestVenuePair_Contains(t *testing.T) {
	venue1 := uuid.New()
	venue2 := uuid.New()
	pair := NewVenuePair(venue1, venue2)

	assert.True(t, pair.Contains(venue1))
	assert.True(t, pair.Contains(venue2))
	assert.False(t, pair.Contains(uuid.New()))
}
