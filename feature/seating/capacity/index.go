package capacity

import (
	"context"
	"time"

	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"
)

// Index answers occupancy questions about a wedding's tables.
//
// Occupancy counts one seat per seating row; companions are deliberately
// not counted here. The layout analyzer counts 1+companions per guest
// instead. The two rules intentionally disagree, matching the behavior
// the seating data was written under (see DESIGN.md).
type Index struct {
	store store.Store
	cache *snapshotCache
}

// NewIndex creates an Index that reads the store directly on every call.
func NewIndex(st store.Store) *Index {
	return &Index{store: st}
}

// NewCachedIndex creates an Index that serves lookups from a per-wedding
// snapshot rebuilt at most once per TTL. Suitable for read-mostly callers
// like conflict listings; mutating callers should use NewIndex so they
// always see fresh occupancy.
func NewCachedIndex(st store.Store, ttl time.Duration) *Index {
	if ttl <= 0 {
		return NewIndex(st)
	}
	return &Index{store: st, cache: newSnapshotCache(ttl)}
}

// HasSeating reports whether the guest has at least one seating row.
func (i *Index) HasSeating(ctx context.Context, weddingID, guestID string) (bool, error) {
	if i.cache != nil {
		snap, err := i.snapshot(ctx, weddingID)
		if err != nil {
			return false, err
		}
		_, ok := snap.Seated[guestID]
		return ok, nil
	}
	rows, err := i.store.SeatingByGuest(ctx, weddingID, guestID)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// Occupancy returns seats consumed per table, one per seating row.
func (i *Index) Occupancy(ctx context.Context, weddingID string) (map[string]int, error) {
	if i.cache != nil {
		snap, err := i.snapshot(ctx, weddingID)
		if err != nil {
			return nil, err
		}
		return snap.Occupancy, nil
	}
	rows, err := i.store.ListSeating(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	return buildOccupancy(rows), nil
}

// FindAvailableTable picks the table with the most remaining space,
// greedy by largest slack, ties broken by first-found in listing order.
// Returns "" when no table exists or none has space left.
func (i *Index) FindAvailableTable(ctx context.Context, weddingID string) (string, error) {
	var (
		tables    []models.Table
		occupancy map[string]int
	)
	if i.cache != nil {
		snap, err := i.snapshot(ctx, weddingID)
		if err != nil {
			return "", err
		}
		tables, occupancy = snap.Tables, snap.Occupancy
	} else {
		var err error
		tables, err = i.store.ListTables(ctx, weddingID)
		if err != nil {
			return "", err
		}
		if len(tables) == 0 {
			return "", nil
		}
		rows, err := i.store.ListSeating(ctx, weddingID)
		if err != nil {
			return "", err
		}
		occupancy = buildOccupancy(rows)
	}

	bestTable := ""
	maxSpace := 0
	for _, table := range tables {
		available := table.EffectiveCapacity() - occupancy[table.ID]
		if available > maxSpace {
			maxSpace = available
			bestTable = table.ID
		}
	}
	return bestTable, nil
}

// Invalidate drops any cached snapshot for the wedding. Callers that
// mutate seating state through other paths use this to avoid serving
// stale occupancy for a full TTL.
func (i *Index) Invalidate(weddingID string) {
	if i.cache != nil {
		i.cache.invalidate(weddingID)
	}
}

func (i *Index) snapshot(ctx context.Context, weddingID string) (*Snapshot, error) {
	return i.cache.getOrBuild(ctx, weddingID, func() (*Snapshot, error) {
		tables, err := i.store.ListTables(ctx, weddingID)
		if err != nil {
			return nil, err
		}
		rows, err := i.store.ListSeating(ctx, weddingID)
		if err != nil {
			return nil, err
		}
		seated := make(map[string]struct{}, len(rows))
		for _, row := range rows {
			if row.GuestID != "" {
				seated[row.GuestID] = struct{}{}
			}
		}
		return &Snapshot{
			Tables:    tables,
			Occupancy: buildOccupancy(rows),
			Seated:    seated,
		}, nil
	})
}

func buildOccupancy(rows []models.SeatingAssignment) map[string]int {
	occupancy := make(map[string]int, len(rows))
	for _, row := range rows {
		if row.TableID != "" {
			occupancy[row.TableID]++
		}
	}
	return occupancy
}
