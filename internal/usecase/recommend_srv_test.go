package usecase

import (
	"testing"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTour(name string, price float64, rating float64, views int64) *entity.Tour {
	return &entity.Tour{
		Base:      entity.Base{ID: uuid.New()},
		Name:      name,
		Slug:      name,
		Price:     price,
		Rating:    rating,
		ViewCount: views,
	}
}

func TestSelectRelatedEmptyPool(t *testing.T) {
	source := makeTour("bali", 1000, 4.0, 10)

	selected := SelectRelated(source, nil)
	assert.Empty(t, selected)
}

func TestSelectRelatedAllWithinTierOne(t *testing.T) {
	source := makeTour("bali", 1000, 4.0, 10)
	pool := []*entity.Tour{
		makeTour("lombok", 900, 4.2, 100),
		makeTour("komodo", 1100, 4.9, 5),
		makeTour("flores", 1000, 4.5, 300),
	}

	selected := SelectRelated(source, pool)

	require.Len(t, selected, 3)
	assert.Equal(t, "komodo", selected[0].Name)
	assert.Equal(t, "flores", selected[1].Name)
	assert.Equal(t, "lombok", selected[2].Name)
}

func TestSelectRelatedFillsFromWiderBands(t *testing.T) {
	// Nothing near the source price, the third tier must still fill
	// the list from a pool of three.
	source := makeTour("bali", 1000, 4.0, 10)
	pool := []*entity.Tour{
		makeTour("cheap", 100, 3.0, 10),
		makeTour("cheaper", 50, 4.0, 10),
		makeTour("luxury", 9000, 5.0, 10),
	}

	selected := SelectRelated(source, pool)

	require.Len(t, selected, 3)
	assert.Equal(t, "luxury", selected[0].Name)
	assert.Equal(t, "cheaper", selected[1].Name)
	assert.Equal(t, "cheap", selected[2].Name)
}

func TestSelectRelatedTierOneBoundsInclusive(t *testing.T) {
	source := makeTour("bali", 1000, 4.0, 10)
	pool := []*entity.Tour{
		makeTour("lower-edge", 700, 1.0, 1),
		makeTour("upper-edge", 1300, 1.5, 1),
		makeTour("outside", 699, 5.0, 999),
	}

	selected := SelectRelated(source, pool)

	// The edge prices sit inside the ±30% band so they outrank the
	// higher-rated tour that only qualifies in a later tier.
	require.Len(t, selected, 3)
	assert.Equal(t, "upper-edge", selected[0].Name)
	assert.Equal(t, "lower-edge", selected[1].Name)
	assert.Equal(t, "outside", selected[2].Name)
}

func TestSelectRelatedExcludesSourceAndDuplicates(t *testing.T) {
	source := makeTour("bali", 1000, 4.0, 10)
	pool := []*entity.Tour{
		source,
		makeTour("lombok", 1000, 4.0, 10),
		makeTour("komodo", 1000, 4.1, 10),
	}

	selected := SelectRelated(source, pool)

	require.Len(t, selected, 2)
	seen := map[uuid.UUID]bool{}
	for _, tour := range selected {
		assert.NotEqual(t, source.ID, tour.ID)
		assert.False(t, seen[tour.ID], "tour selected twice")
		seen[tour.ID] = true
	}
}

func TestSelectRelatedRatingTiesBrokenByViews(t *testing.T) {
	// Ten candidates, none within ±50%, identical ratings. The third
	// tier picks the three most viewed.
	source := makeTour("bali", 1000, 4.0, 10)
	var pool []*entity.Tour
	for i := int64(1); i <= 10; i++ {
		pool = append(pool, makeTour("t", 100, 4.0, i*10))
	}

	selected := SelectRelated(source, pool)

	require.Len(t, selected, 3)
	assert.Equal(t, int64(100), selected[0].ViewCount)
	assert.Equal(t, int64(90), selected[1].ViewCount)
	assert.Equal(t, int64(80), selected[2].ViewCount)
}

func TestSelectRelatedOrderingWithinResult(t *testing.T) {
	source := makeTour("bali", 1000, 4.0, 10)
	pool := []*entity.Tour{
		makeTour("a", 1000, 4.5, 50),
		makeTour("b", 1000, 4.5, 70),
		makeTour("c", 1000, 4.9, 5),
	}

	selected := SelectRelated(source, pool)

	require.Len(t, selected, 3)
	for i := 1; i < len(selected); i++ {
		prev, cur := selected[i-1], selected[i]
		ok := prev.Rating > cur.Rating ||
			(prev.Rating == cur.Rating && prev.ViewCount >= cur.ViewCount)
		assert.True(t, ok, "selection out of order at %d", i)
	}
}

func TestSelectRelatedWideningScenario(t *testing.T) {
	source := makeTour("bali", 1_000_000, 4.0, 10)
	pool := []*entity.Tour{
		makeTour("near-high", 1_100_000, 4.5, 50),
		makeTour("near-low", 1_050_000, 4.8, 10),
		makeTour("premium", 2_500_000, 5.0, 1000),
	}

	selected := SelectRelated(source, pool)

	// Both near-priced tours land in the first band ordered by rating,
	// the premium one is far outside every band and fills the last slot.
	require.Len(t, selected, 3)
	assert.Equal(t, "near-low", selected[0].Name)
	assert.Equal(t, "near-high", selected[1].Name)
	assert.Equal(t, "premium", selected[2].Name)
}

func TestSelectRelatedUsesEffectivePrice(t *testing.T) {
	source := makeTour("bali", 1000, 4.0, 10)

	// List price far away, sale price inside the first band
	discounted := makeTour("sale", 5000, 3.0, 1)
	salePrice := 1000.0
	discounted.SalePrice = &salePrice

	pool := []*entity.Tour{
		discounted,
		makeTour("far", 5000, 5.0, 100),
	}

	selected := SelectRelated(source, pool)

	require.Len(t, selected, 2)
	assert.Equal(t, "sale", selected[0].Name)
	assert.Equal(t, "far", selected[1].Name)
}
