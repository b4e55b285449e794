package geofence

import (
	"testing"

	"geofeed/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFence(name string, lat, lng, radiusMeters float64, active bool) *entity.Geofence {
	return &entity.Geofence{
		ID:           uuid.New(),
		MerchantID:   uuid.New(),
		Name:         name,
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radiusMeters,
		IsActive:     active,
	}
}

func fenceNames(fences []*entity.Geofence) []string {
	names := make([]string, 0, len(fences))
	for _, fence := range fences {
		names = append(names, fence.Name)
	}

	return names
}

func TestIndex_QueryBeforeReload(t *testing.T) {
	t.Parallel()

	idx := NewIndex(0.5)

	assert.Nil(t, idx.Query(25.0330, 121.5654))
	assert.Zero(t, idx.Size())
}

func TestIndex_QueryMatchesWithinRadius(t *testing.T) {
	t.Parallel()

	// Taipei 101 with a 500m fence.
	idx := NewIndex(0.5)
	idx.Reload([]*entity.Geofence{
		newFence("taipei-101", 25.0330, 121.5654, 500, true),
	})

	// Roughly 200m north of the center.
	matches := idx.Query(25.0348, 121.5654)
	require.Len(t, matches, 1)
	assert.Equal(t, "taipei-101", matches[0].Name)

	// Roughly 2km away.
	assert.Empty(t, idx.Query(25.0510, 121.5654))
}

func TestIndex_QueryBoundaryInclusive(t *testing.T) {
	t.Parallel()

	idx := NewIndex(0.5)
	idx.Reload([]*entity.Geofence{
		// One degree of longitude at the equator is close to 111.32km.
		newFence("equator", 0, 0, 111_320, true),
	})

	assert.Len(t, idx.Query(0, 1.0), 1)
	assert.Empty(t, idx.Query(0, 1.01))
}

func TestIndex_OverlappingFencesAllMatch(t *testing.T) {
	t.Parallel()

	idx := NewIndex(0.5)
	idx.Reload([]*entity.Geofence{
		newFence("north", 25.0340, 121.5654, 800, true),
		newFence("south", 25.0320, 121.5654, 800, true),
		newFence("far", 25.1000, 121.5654, 300, true),
	})

	matches := idx.Query(25.0330, 121.5654)
	assert.ElementsMatch(t, []string{"north", "south"}, fenceNames(matches))
}

func TestIndex_InactiveFencesDropped(t *testing.T) {
	t.Parallel()

	idx := NewIndex(0.5)
	idx.Reload([]*entity.Geofence{
		newFence("active", 25.0330, 121.5654, 500, true),
		newFence("inactive", 25.0330, 121.5654, 500, false),
	})

	assert.Equal(t, 1, idx.Size())
	assert.Equal(t, []string{"active"}, fenceNames(idx.Query(25.0330, 121.5654)))
}

func TestIndex_LargeRadiusCrossesCells(t *testing.T) {
	t.Parallel()

	// A 5km fence with 0.5km cells needs the query window to span many cells.
	idx := NewIndex(0.5)
	idx.Reload([]*entity.Geofence{
		newFence("wide", 25.0330, 121.5654, 5000, true),
	})

	// Roughly 4km east of the center.
	matches := idx.Query(25.0330, 121.6050)
	assert.Len(t, matches, 1)
}

func TestIndex_ReloadSwapsSnapshot(t *testing.T) {
	t.Parallel()

	idx := NewIndex(0.5)
	idx.Reload([]*entity.Geofence{
		newFence("old", 25.0330, 121.5654, 500, true),
	})
	require.Len(t, idx.Query(25.0330, 121.5654), 1)

	idx.Reload([]*entity.Geofence{
		newFence("new", 24.1477, 120.6736, 500, true),
	})

	assert.Empty(t, idx.Query(25.0330, 121.5654))
	assert.Equal(t, []string{"new"}, fenceNames(idx.Query(24.1477, 120.6736)))
}
