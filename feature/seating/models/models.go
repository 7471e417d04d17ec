package models

import "time"

// Guest statuses as stored on the guest record.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
)

// Seating status values denormalized onto the guest record.
const (
	SeatingStatusPending = "pending"
	SeatingStatusSynced  = "synced"
)

// DefaultTableCapacity is the fallback capacity when a table defines
// neither capacity nor seats.
const DefaultTableCapacity = 8

// GuestsPerTable drives how many tables are derived from a raw guest
// count when a wedding has no tables yet.
const GuestsPerTable = 10

// Guest is a wedding guest as kept in the guests collection.
type Guest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Status     string   `json:"status"`
	Companions int      `json:"companions"`
	Allergens  []string `json:"allergens,omitempty"`

	// Seating fields denormalized onto the guest by the reconciler.
	NeedsSeating  bool   `json:"needsSeating,omitempty"`
	SeatingStatus string `json:"seatingStatus,omitempty"`
	HasSeating    bool   `json:"hasSeating,omitempty"`
	TableID       string `json:"tableId,omitempty"`
	// TableName is the legacy free-text table reference still present on
	// older guest records.
	TableName  string `json:"table,omitempty"`
	SeatNumber *int   `json:"seatNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// SeatCount returns the number of seats the guest consumes at a table.
func (g Guest) SeatCount() int {
	if g.Companions < 0 {
		return 1
	}
	return 1 + g.Companions
}

// SeatingAssignment binds a guest to a table, keyed by guest: a guest has
// at most one assignment. SeatNumber nil means seat-TBD within the table.
type SeatingAssignment struct {
	ID         string `json:"id"`
	GuestID    string `json:"guestId"`
	TableID    string `json:"tableId"`
	SeatNumber *int   `json:"seatNumber"`

	// Fields mirrored from the guest record; kept eventually consistent
	// by the reconciler.
	GuestName  string   `json:"guestName"`
	GuestEmail string   `json:"guestEmail"`
	Dietary    []string `json:"dietary,omitempty"`
	Companions int      `json:"companions"`

	AssignedAt time.Time `json:"assignedAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// Table is a banquet table, optionally positioned in the hall.
type Table struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity,omitempty"`
	Seats    int     `json:"seats,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Diameter float64 `json:"diameter,omitempty"`
	Shape    string  `json:"shape,omitempty"`

	TableType    string `json:"tableType,omitempty"`
	Enabled      bool   `json:"enabled,omitempty"`
	AutoCapacity bool   `json:"autoCapacity,omitempty"`
}

// EffectiveCapacity resolves the table capacity with the legacy fallback
// chain: capacity, then seats, then the default of 8. All capacity math
// goes through here so the fallback lives in exactly one place.
func (t Table) EffectiveCapacity() int {
	if t.Capacity > 0 {
		return t.Capacity
	}
	if t.Seats > 0 {
		return t.Seats
	}
	return DefaultTableCapacity
}

// SyncReport is the snapshot persisted after a bulk guest sync. One
// document per wedding, overwritten on every run.
type SyncReport struct {
	Total        int       `json:"total"`
	Synced       int       `json:"synced"`
	Removed      int       `json:"removed"`
	NeedsSeating int       `json:"needsSeating"`
	Errors       int       `json:"errors"`
	Timestamp    time.Time `json:"timestamp"`
}

// ReverseSyncReport summarizes a seating-to-guests pass. Recovered lists
// the guest ids fabricated from orphaned seating rows so callers can
// audit when the recovery branch fired.
type ReverseSyncReport struct {
	Total     int       `json:"total"`
	Updated   int       `json:"updated"`
	Created   int       `json:"created"`
	Errors    int       `json:"errors"`
	Recovered []string  `json:"recovered,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SyncLogEntry is an audit record appended whenever the reconciler
// mutates seating state.
type SyncLogEntry struct {
	Action    string    `json:"action"`
	GuestID   string    `json:"guestId"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HallSize is the rectangular banquet hall the layout engine places
// tables into.
type HallSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutResult is the outcome of an auto-layout run.
type LayoutResult struct {
	Tables           []Table `json:"tables"`
	UnassignedGuests []Guest `json:"unassignedGuests"`
	TotalTables      int     `json:"totalTables"`
	TotalAssigned    int     `json:"totalAssigned"`
	Message          string  `json:"message"`
}
