// Package sync keeps the guest and seating collections consistent.
//
// The reconciler treats the guest record as the source of truth for RSVP
// status and the seating collection as derived state: confirmed guests
// keep (or are queued for) a seating row with mirrored guest fields,
// everyone else loses theirs. It never assumes exclusive ownership of
// either collection and is safe to re-run; consistency is eventual, a
// later pass repairs whatever raced with an earlier one.
package sync

import (
	"context"
	"errors"
	"time"

	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"

	"go.uber.org/zap"
)

// Reverse-sync item outcomes.
const (
	ItemUpdated   = "updated"
	ItemRecovered = "recovered"
)

// Reconciler synchronizes RSVP status with seating assignments.
type Reconciler struct {
	store  store.Store
	logger *zap.Logger
}

// NewReconciler creates a reconciler over the given store.
func NewReconciler(st store.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: st, logger: logger}
}

// SyncGuestToSeating reconciles a single guest into seating state:
//
//   - guest missing: not_found failure
//   - guest not confirmed: any seating rows are removed
//   - guest confirmed without seating: marked as needing a seat
//   - guest confirmed with seating: mirrored fields are refreshed
//
// Failures are reported in the result so bulk callers can keep going.
func (r *Reconciler) SyncGuestToSeating(ctx context.Context, weddingID, guestID string) models.SyncResult {
	guest, err := r.store.GetGuest(ctx, weddingID, guestID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Failure(models.CodeNotFound, "guest not found")
	}
	if err != nil {
		return models.Failure(models.CodeWriteFailure, err.Error())
	}

	if guest.Status != models.StatusConfirmed {
		if err := r.RemoveGuestFromSeating(ctx, weddingID, guestID); err != nil {
			return models.Failure(models.CodeWriteFailure, err.Error())
		}
		return models.SyncResult{Success: true, Action: models.ActionRemoved, Reason: "not_confirmed"}
	}

	rows, err := r.store.SeatingByGuest(ctx, weddingID, guestID)
	if err != nil {
		return models.Failure(models.CodeWriteFailure, err.Error())
	}

	if len(rows) == 0 {
		err := r.store.UpdateGuest(ctx, weddingID, guestID, map[string]any{
			store.FieldNeedsSeating:  true,
			store.FieldSeatingStatus: models.SeatingStatusPending,
		})
		if err != nil {
			return models.Failure(models.CodeWriteFailure, err.Error())
		}
		return models.SyncResult{Success: true, Action: models.ActionMarkedPending, NeedsSeating: true}
	}

	err = r.store.UpdateSeatingForGuest(ctx, weddingID, guestID, map[string]any{
		store.FieldGuestName:  guest.Name,
		store.FieldGuestEmail: guest.Email,
		store.FieldDietary:    guest.Allergens,
		store.FieldCompanions: guest.Companions,
	})
	if err != nil {
		return models.Failure(models.CodeWriteFailure, err.Error())
	}
	return models.SyncResult{Success: true, Action: models.ActionSynced}
}

// SyncAllGuests reconciles every guest of the wedding, strictly
// sequentially, and overwrites the wedding's sync report. One guest's
// failure increments the error count and never aborts the batch; only a
// failure to list the guests at all is fatal.
func (r *Reconciler) SyncAllGuests(ctx context.Context, weddingID string) (*models.SyncReport, error) {
	guests, err := r.store.ListGuests(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	report := models.SyncReport{Total: len(guests)}
	for _, guest := range guests {
		result := r.SyncGuestToSeating(ctx, weddingID, guest.ID)
		switch {
		case !result.Success:
			report.Errors++
			r.logger.Warn("Guest sync failed",
				zap.String("wedding_id", weddingID),
				zap.String("guest_id", guest.ID),
				zap.String("code", string(result.Code)),
				zap.String("error", result.Error),
			)
		case result.Action == models.ActionSynced:
			report.Synced++
		case result.Action == models.ActionRemoved:
			report.Removed++
		case result.NeedsSeating:
			report.NeedsSeating++
		}
	}
	report.Timestamp = time.Now()

	if err := r.store.SaveSyncReport(ctx, weddingID, report); err != nil {
		// The pass itself succeeded; a lost snapshot is recoverable on
		// the next run.
		r.logger.Warn("Failed to save sync report",
			zap.String("wedding_id", weddingID), zap.Error(err))
	}

	r.logger.Info("Guest sync completed",
		zap.String("wedding_id", weddingID),
		zap.Int("total", report.Total),
		zap.Int("synced", report.Synced),
		zap.Int("removed", report.Removed),
		zap.Int("needs_seating", report.NeedsSeating),
		zap.Int("errors", report.Errors),
	)
	return &report, nil
}

// SyncSeatingToGuests pushes seating state back onto guest records. A
// seating row whose guest no longer exists recovers the guest from the
// row's mirrored fields; recoveries are tagged in the report so callers
// can audit when that branch fired.
func (r *Reconciler) SyncSeatingToGuests(ctx context.Context, weddingID string) (*models.ReverseSyncReport, error) {
	rows, err := r.store.ListSeating(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	report := models.ReverseSyncReport{Total: len(rows)}
	for _, row := range rows {
		if row.GuestID == "" {
			continue
		}

		outcome, err := r.syncSeatingRow(ctx, weddingID, row)
		if err != nil {
			report.Errors++
			r.logger.Warn("Seating row sync failed",
				zap.String("wedding_id", weddingID),
				zap.String("guest_id", row.GuestID),
				zap.Error(err),
			)
			continue
		}
		if outcome == ItemRecovered {
			report.Created++
			report.Recovered = append(report.Recovered, row.GuestID)
		} else {
			report.Updated++
		}
	}
	report.Timestamp = time.Now()
	return &report, nil
}

// syncSeatingRow applies one seating row to its guest, recovering the
// guest when it no longer exists.
func (r *Reconciler) syncSeatingRow(ctx context.Context, weddingID string, row models.SeatingAssignment) (string, error) {
	_, err := r.store.GetGuest(ctx, weddingID, row.GuestID)
	if err == nil {
		err := r.store.UpdateGuest(ctx, weddingID, row.GuestID, map[string]any{
			store.FieldHasSeating: true,
			store.FieldTableID:    row.TableID,
			store.FieldSeatNumber: row.SeatNumber,
		})
		if err != nil {
			return "", err
		}
		return ItemUpdated, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	now := time.Now()
	guest := models.Guest{
		ID:         row.GuestID,
		Name:       row.GuestName,
		Email:      row.GuestEmail,
		Status:     models.StatusPending,
		HasSeating: true,
		TableID:    row.TableID,
		SeatNumber: row.SeatNumber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.store.CreateGuest(ctx, weddingID, guest); err != nil {
		return "", err
	}
	r.logger.Warn("Recovered guest from orphaned seating row",
		zap.String("wedding_id", weddingID),
		zap.String("guest_id", row.GuestID),
		zap.String("table_id", row.TableID),
	)
	return ItemRecovered, nil
}

// RemoveGuestFromSeating deletes every seating row of the guest as one
// batch and appends an audit entry.
func (r *Reconciler) RemoveGuestFromSeating(ctx context.Context, weddingID, guestID string) error {
	if err := r.store.DeleteSeatingForGuest(ctx, weddingID, guestID); err != nil {
		return err
	}

	entry := models.SyncLogEntry{
		Action:    "remove_seating",
		GuestID:   guestID,
		Reason:    "not_confirmed",
		Timestamp: time.Now(),
	}
	if err := r.store.AppendSyncLog(ctx, weddingID, entry); err != nil {
		// Audit only; the removal itself stands.
		r.logger.Warn("Failed to append sync log",
			zap.String("wedding_id", weddingID),
			zap.String("guest_id", guestID),
			zap.Error(err),
		)
	}
	return nil
}
