// Package geofence provides the grid-based spatial index over the active geofence catalog.
package geofence

import (
	"math"
	"sync/atomic"

	"geofeed/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// kmPerDegree approximates the length of one degree of latitude.
const kmPerDegree = 111.0

// minCosLat bounds the longitude-degree conversion near the poles.
const minCosLat = 0.01

// Index is a grid-based spatial index over geofence center points.
// Rebuilds construct a fresh snapshot and swap it atomically, so queries
// running concurrently with a reload never observe a partially built grid.
type Index struct {
	cellSizeKm float64
	snap       atomic.Pointer[snapshot]
}

type gridKey struct {
	latCell int
	lngCell int
}

// snapshot is one immutable generation of the index.
type snapshot struct {
	fences          []*entity.Geofence
	grid            map[gridKey][]int // maps grid cell to fence indices
	cellSizeLat     float64           // grid cell size in latitude degrees
	cellSizeLng     float64           // grid cell size in longitude degrees
	maxRadiusMeters float64           // largest fence radius in this generation
}

// NewIndex creates a new grid-based spatial index.
// cellSizeKm determines the grid cell size (smaller = more cells, faster lookup but more memory).
func NewIndex(cellSizeKm float64) *Index {
	if cellSizeKm <= 0 {
		cellSizeKm = 0.5
	}

	return &Index{cellSizeKm: cellSizeKm}
}

// Reload builds a fresh snapshot from the given catalog rows and swaps it in.
// Inactive fences are dropped here, so queries can never match one.
func (idx *Index) Reload(fences []*entity.Geofence) {
	cellSizeDeg := idx.cellSizeKm / kmPerDegree

	next := &snapshot{
		grid:        make(map[gridKey][]int),
		cellSizeLat: cellSizeDeg,
		cellSizeLng: cellSizeDeg,
	}

	for _, fence := range fences {
		if !fence.IsActive {
			continue
		}

		i := len(next.fences)
		next.fences = append(next.fences, fence)
		key := next.keyFor(fence.Latitude, fence.Longitude)
		next.grid[key] = append(next.grid[key], i)

		if fence.RadiusMeters > next.maxRadiusMeters {
			next.maxRadiusMeters = fence.RadiusMeters
		}
	}

	idx.snap.Store(next)
}

// Query returns every fence whose great-circle distance from the coordinate is
// within its radius. Before the first reload it returns nil.
func (idx *Index) Query(lat, lng float64) []*entity.Geofence {
	snap := idx.snap.Load()
	if snap == nil || len(snap.fences) == 0 {
		return nil
	}

	point := orb.Point{lng, lat}
	center := snap.keyFor(lat, lng)

	// The window must cover the largest radius in the snapshot. Longitude
	// degrees shrink with latitude, so the span widens by 1/cos(lat); the
	// exact distance check below keeps matches correct either way.
	maxRadiusKm := snap.maxRadiusMeters / 1000.0
	latCells := int(math.Ceil(maxRadiusKm/idx.cellSizeKm)) + 1

	cosLat := math.Cos(lat * math.Pi / 180.0)
	if cosLat < minCosLat {
		cosLat = minCosLat
	}
	lngCells := int(math.Ceil(maxRadiusKm/(idx.cellSizeKm*cosLat))) + 1

	var matches []*entity.Geofence
	for dLat := -latCells; dLat <= latCells; dLat++ {
		for dLng := -lngCells; dLng <= lngCells; dLng++ {
			key := gridKey{latCell: center.latCell + dLat, lngCell: center.lngCell + dLng}
			for _, i := range snap.grid[key] {
				fence := snap.fences[i]
				centerPoint := orb.Point{fence.Longitude, fence.Latitude}
				if geo.DistanceHaversine(point, centerPoint) <= fence.RadiusMeters {
					matches = append(matches, fence)
				}
			}
		}
	}

	return matches
}

// Size returns the number of fences in the current snapshot.
func (idx *Index) Size() int {
	snap := idx.snap.Load()
	if snap == nil {
		return 0
	}

	return len(snap.fences)
}

func (s *snapshot) keyFor(lat, lng float64) gridKey {
	return gridKey{
		latCell: int(math.Floor(lat / s.cellSizeLat)),
		lngCell: int(math.Floor(lng / s.cellSizeLng)),
	}
}
