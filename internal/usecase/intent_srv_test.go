package usecase

import (
	"testing"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentRoundTrip(t *testing.T) {
	intent := &entity.BookingIntent{
		Version:         entity.IntentSchemaVersion,
		TourID:          uuid.New(),
		TourSlug:        "bali-getaway",
		StartDate:       "2026-09-15",
		NumAdults:       2,
		NumChildren:     1,
		SpecialRequests: "vegetarian meals",
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}

	payload, err := encodeIntent(intent)
	require.NoError(t, err)

	decoded, err := decodeIntent(payload)
	require.NoError(t, err)

	assert.Equal(t, intent.TourID, decoded.TourID)
	assert.Equal(t, intent.TourSlug, decoded.TourSlug)
	assert.Equal(t, intent.StartDate, decoded.StartDate)
	assert.Equal(t, intent.NumAdults, decoded.NumAdults)
	assert.Equal(t, intent.NumChildren, decoded.NumChildren)
	assert.Equal(t, intent.SpecialRequests, decoded.SpecialRequests)
	assert.True(t, intent.CreatedAt.Equal(decoded.CreatedAt))
}

func TestDecodeIntentRejectsUnknownVersion(t *testing.T) {
	intent := &entity.BookingIntent{
		Version:  entity.IntentSchemaVersion + 1,
		TourID:   uuid.New(),
		TourSlug: "bali-getaway",
	}

	payload, err := encodeIntent(intent)
	require.NoError(t, err)

	decoded, err := decodeIntent(payload)
	assert.Error(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeIntentRejectsGarbage(t *testing.T) {
	decoded, err := decodeIntent([]byte("{not json"))
	assert.Error(t, err)
	assert.Nil(t, decoded)
}
