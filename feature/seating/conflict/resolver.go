package conflict

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/feature/seating/capacity"
	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"
	"wedding-planner/feature/seating/sync"

	"go.uber.org/zap"
)

// Resolver applies a requested resolution strategy to one conflict.
type Resolver struct {
	store      store.Store
	index      *capacity.Index
	reconciler *sync.Reconciler
	logger     *zap.Logger
}

// NewResolver creates a resolver. The index should be an uncached one so
// auto-assignment always sees current occupancy.
func NewResolver(st store.Store, index *capacity.Index, reconciler *sync.Reconciler, logger *zap.Logger) *Resolver {
	return &Resolver{store: st, index: index, reconciler: reconciler, logger: logger}
}

// ResolveConflict dispatches on the (conflict type, resolution) pair:
//
//   - missing_seating + auto_assign: seat the guest at the table with the
//     most remaining space
//   - orphan_seating + remove: delete the seating row
//   - seating_not_confirmed + remove_seating: remove the guest's seating
//     through the reconciler's removal path
//
// Any other pair fails with unsupported_resolution.
func (r *Resolver) ResolveConflict(ctx context.Context, weddingID string, conflict models.Conflict, resolution string) models.SyncResult {
	switch {
	case conflict.Type == models.ConflictMissingSeating && resolution == models.ResolutionAutoAssign:
		return r.assignGuestToTable(ctx, weddingID, conflict.GuestID)

	case conflict.Type == models.ConflictOrphanSeating && resolution == models.ResolutionRemove:
		if err := r.store.DeleteSeating(ctx, weddingID, conflict.SeatingID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return models.Failure(models.CodeNotFound, "seating row not found")
			}
			return models.Failure(models.CodeWriteFailure, err.Error())
		}
		r.index.Invalidate(weddingID)
		return models.SyncResult{Success: true, Action: models.ActionRemoved}

	case conflict.Type == models.ConflictSeatingNotConfirmed && resolution == models.ResolutionRemoveSeating:
		if err := r.reconciler.RemoveGuestFromSeating(ctx, weddingID, conflict.GuestID); err != nil {
			return models.Failure(models.CodeWriteFailure, err.Error())
		}
		r.index.Invalidate(weddingID)
		return models.SyncResult{Success: true, Action: models.ActionRemoved}

	default:
		msg := fmt.Sprintf("resolution %q is not supported for conflict type %q", resolution, conflict.Type)
		return models.Failure(models.CodeUnsupportedResolution, msg)
	}
}

// assignGuestToTable seats the guest at the table with the most remaining
// space. The seat number stays unset; seats are assigned when the couple
// arranges the table, not here.
func (r *Resolver) assignGuestToTable(ctx context.Context, weddingID, guestID string) models.SyncResult {
	guest, err := r.store.GetGuest(ctx, weddingID, guestID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Failure(models.CodeNotFound, "guest not found")
	}
	if err != nil {
		return models.Failure(models.CodeWriteFailure, err.Error())
	}

	tableID, err := r.index.FindAvailableTable(ctx, weddingID)
	if err != nil {
		return models.Failure(models.CodeWriteFailure, err.Error())
	}
	if tableID == "" {
		return models.Failure(models.CodeNoCapacity, "no table has remaining space")
	}
	if _, err := r.store.GetTable(ctx, weddingID, tableID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Failure(models.CodeNotFound, "table not found")
		}
		return models.Failure(models.CodeWriteFailure, err.Error())
	}

	assignment := models.SeatingAssignment{
		ID:         guest.ID,
		GuestID:    guest.ID,
		TableID:    tableID,
		GuestName:  guest.Name,
		GuestEmail: guest.Email,
		Dietary:    guest.Allergens,
		Companions: guest.Companions,
	}
	if err := r.store.UpsertSeating(ctx, weddingID, assignment); err != nil {
		return models.Failure(models.CodeWriteFailure, err.Error())
	}
	r.index.Invalidate(weddingID)

	r.logger.Info("Guest auto-assigned to table",
		zap.String("wedding_id", weddingID),
		zap.String("guest_id", guestID),
		zap.String("table_id", tableID),
	)
	return models.SyncResult{Success: true, Action: models.ActionAssigned}
}
