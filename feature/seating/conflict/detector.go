// Package conflict finds and resolves inconsistencies between the guest
// and seating collections.
package conflict

import (
	"context"
	"errors"

	"wedding-planner/feature/seating/capacity"
	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"

	"go.uber.org/zap"
)

// Detector scans a wedding for guest/seating inconsistencies.
type Detector struct {
	store  store.Store
	index  *capacity.Index
	logger *zap.Logger
}

// NewDetector creates a detector over the given store and capacity index.
func NewDetector(st store.Store, index *capacity.Index, logger *zap.Logger) *Detector {
	return &Detector{store: st, index: index, logger: logger}
}

// DetectConflicts lists every inconsistency in two passes: first the
// confirmed guests without seating, then the seating rows whose guest is
// missing or not confirmed. Conflicts are returned in pass order, not
// severity order, and the same guest can appear in both passes.
func (d *Detector) DetectConflicts(ctx context.Context, weddingID string) ([]models.Conflict, error) {
	conflicts := []models.Conflict{}

	confirmed, err := d.store.ListGuestsByStatus(ctx, weddingID, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	for _, guest := range confirmed {
		seated, err := d.index.HasSeating(ctx, weddingID, guest.ID)
		if err != nil {
			return nil, err
		}
		if !seated {
			conflicts = append(conflicts, models.Conflict{
				Type:      models.ConflictMissingSeating,
				Severity:  models.SeverityHigh,
				GuestID:   guest.ID,
				GuestName: guest.Name,
			})
		}
	}

	rows, err := d.store.ListSeating(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		// Legacy rows without a guest reference are skipped, as in the
		// reverse-sync pass.
		if row.GuestID == "" {
			continue
		}
		guest, err := d.store.GetGuest(ctx, weddingID, row.GuestID)
		if errors.Is(err, store.ErrNotFound) {
			conflicts = append(conflicts, models.Conflict{
				Type:      models.ConflictOrphanSeating,
				Severity:  models.SeverityMedium,
				GuestID:   row.GuestID,
				GuestName: row.GuestName,
				SeatingID: row.ID,
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		if guest.Status != models.StatusConfirmed {
			conflicts = append(conflicts, models.Conflict{
				Type:      models.ConflictSeatingNotConfirmed,
				Severity:  models.SeverityLow,
				GuestID:   guest.ID,
				GuestName: guest.Name,
				SeatingID: row.ID,
				Status:    guest.Status,
			})
		}
	}

	d.logger.Debug("Conflict scan completed",
		zap.String("wedding_id", weddingID),
		zap.Int("conflicts", len(conflicts)),
	)
	return conflicts, nil
}
