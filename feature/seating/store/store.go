package store

import (
	"context"
	"errors"

	"wedding-planner/feature/seating/models"
)

// ErrNotFound is returned when a referenced guest, table, or seating row
// does not exist.
var ErrNotFound = errors.New("not found")

// Canonical document field names accepted by the merge-style update
// operations. Implementations translate these to their own column or key
// naming.
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldStatus        = "status"
	FieldCompanions    = "companions"
	FieldNeedsSeating  = "needsSeating"
	FieldSeatingStatus = "seatingStatus"
	FieldHasSeating    = "hasSeating"
	FieldTableID       = "tableId"
	FieldSeatNumber    = "seatNumber"
	FieldGuestName     = "guestName"
	FieldGuestEmail    = "guestEmail"
	FieldDietary       = "dietary"
)

// Store is the document-store contract the seating engine runs against.
// Collections are scoped per wedding. Listings return documents in a
// stable insertion order so batch passes and tie-breaking are
// deterministic. Batch mutations (the ...ForGuest operations) are atomic
// within their collection; no atomicity spans guests and seating
// together.
type Store interface {
	GetGuest(ctx context.Context, weddingID, guestID string) (*models.Guest, error)
	ListGuests(ctx context.Context, weddingID string) ([]models.Guest, error)
	ListGuestsByStatus(ctx context.Context, weddingID, status string) ([]models.Guest, error)
	CreateGuest(ctx context.Context, weddingID string, guest models.Guest) error
	// UpdateGuest merges the given fields into an existing guest document.
	UpdateGuest(ctx context.Context, weddingID, guestID string, fields map[string]any) error

	// SeatingByGuest returns the assignments referencing a guest
	// (expected 0 or 1).
	SeatingByGuest(ctx context.Context, weddingID, guestID string) ([]models.SeatingAssignment, error)
	ListSeating(ctx context.Context, weddingID string) ([]models.SeatingAssignment, error)
	// UpsertSeating creates or merges the assignment keyed by its ID.
	UpsertSeating(ctx context.Context, weddingID string, assignment models.SeatingAssignment) error
	// UpdateSeatingForGuest merges fields into every assignment of the
	// guest as one batch.
	UpdateSeatingForGuest(ctx context.Context, weddingID, guestID string, fields map[string]any) error
	DeleteSeating(ctx context.Context, weddingID, seatingID string) error
	// DeleteSeatingForGuest removes every assignment of the guest as one
	// batch. Deleting a guest with no assignments is not an error.
	DeleteSeatingForGuest(ctx context.Context, weddingID, guestID string) error

	ListTables(ctx context.Context, weddingID string) ([]models.Table, error)
	GetTable(ctx context.Context, weddingID, tableID string) (*models.Table, error)
	CreateTables(ctx context.Context, weddingID string, tables []models.Table) error

	// SaveSyncReport overwrites the single report document of the wedding.
	SaveSyncReport(ctx context.Context, weddingID string, report models.SyncReport) error
	GetSyncReport(ctx context.Context, weddingID string) (*models.SyncReport, error)
	AppendSyncLog(ctx context.Context, weddingID string, entry models.SyncLogEntry) error
}
