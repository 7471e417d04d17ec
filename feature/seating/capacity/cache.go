package capacity

import (
	"context"
	"sync"
	"time"

	"wedding-planner/feature/seating/models"

	"golang.org/x/sync/singleflight"
)

// Snapshot holds a wedding's tables and occupancy at one point in time.
type Snapshot struct {
	// Tables in store listing order.
	Tables []models.Table

	// Occupancy is seats consumed per table, one per seating row.
	Occupancy map[string]int

	// Seated is the set of guest ids that have a seating row.
	Seated map[string]struct{}

	// Built is when the snapshot was taken.
	Built time.Time

	// TTL is how long the snapshot may be served.
	TTL time.Duration
}

// IsExpired reports whether the snapshot is past its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true
	}
	return time.Since(s.Built) > s.TTL
}

// snapshotCache keeps one snapshot per wedding and collapses concurrent
// rebuilds of the same wedding into a single store scan.
type snapshotCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		ttl:       ttl,
		snapshots: make(map[string]*Snapshot),
	}
}

func (c *snapshotCache) getOrBuild(ctx context.Context, weddingID string, build func() (*Snapshot, error)) (*Snapshot, error) {
	c.mu.RLock()
	snap, ok := c.snapshots[weddingID]
	c.mu.RUnlock()
	if ok && !snap.IsExpired() {
		return snap, nil
	}

	result, err, _ := c.sf.Do(weddingID, func() (any, error) {
		// Re-check under singleflight: another caller may have rebuilt
		// while this one waited.
		c.mu.RLock()
		snap, ok := c.snapshots[weddingID]
		c.mu.RUnlock()
		if ok && !snap.IsExpired() {
			return snap, nil
		}

		fresh, err := build()
		if err != nil {
			return nil, err
		}
		fresh.Built = time.Now()
		fresh.TTL = c.ttl

		c.mu.Lock()
		c.snapshots[weddingID] = fresh
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Invalidate drops the cached snapshot for a wedding.
func (c *snapshotCache) invalidate(weddingID string) {
	c.mu.Lock()
	delete(c.snapshots, weddingID)
	c.mu.Unlock()
}
