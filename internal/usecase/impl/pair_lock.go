package impl

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
)

const pairLockShards = 256

// pairLocker serializes trigger evaluation per (user, geofence) pair so the
// suppress-check and the fired-record behave as one atomic step. Shard count is
// fixed, so memory stays bounded no matter how many pairs are seen.
type pairLocker struct {
	shards [pairLockShards]sync.Mutex
}

func (l *pairLocker) lock(userID, geofenceID uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(userID[:])
	h.Write(geofenceID[:])

	mu := &l.shards[h.Sum32()%pairLockShards]
	mu.Lock()

	return mu
}
