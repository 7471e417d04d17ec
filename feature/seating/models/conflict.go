package models

// ConflictType classifies an inconsistency between the guest and seating
// collections.
type ConflictType string

const (
	// ConflictMissingSeating is a confirmed guest without a seating row.
	ConflictMissingSeating ConflictType = "missing_seating"
	// ConflictOrphanSeating is a seating row whose guest no longer exists.
	ConflictOrphanSeating ConflictType = "orphan_seating"
	// ConflictSeatingNotConfirmed is a seating row for a guest that is not
	// confirmed.
	ConflictSeatingNotConfirmed ConflictType = "seating_not_confirmed"
)

// Conflict severities.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Resolution strategies accepted by the resolver.
const (
	ResolutionAutoAssign    = "auto_assign"
	ResolutionRemove        = "remove"
	ResolutionRemoveSeating = "remove_seating"
)

// Conflict is a detected inconsistency. Transient: returned to callers
// and audit-logged, never persisted as its own entity.
type Conflict struct {
	Type      ConflictType `json:"type"`
	Severity  string       `json:"severity"`
	GuestID   string       `json:"guestId,omitempty"`
	GuestName string       `json:"guestName,omitempty"`
	SeatingID string       `json:"seatingId,omitempty"`
	Status    string       `json:"status,omitempty"`
}

// ErrorCode is the machine-readable failure taxonomy carried by result
// objects.
type ErrorCode string

const (
	// CodeNotFound marks a referenced guest, table, or seating row that is
	// absent.
	CodeNotFound ErrorCode = "not_found"
	// CodeNoCapacity marks an auto-assign attempt when no table has
	// remaining space.
	CodeNoCapacity ErrorCode = "no_capacity"
	// CodeUnsupportedResolution marks a conflict/resolution pair the
	// resolver does not implement.
	CodeUnsupportedResolution ErrorCode = "unsupported_resolution"
	// CodeWriteFailure marks a failed store mutation.
	CodeWriteFailure ErrorCode = "write_failure"
)

// Sync actions reported by the per-guest reconciliation state machine.
const (
	ActionSynced        = "synced"
	ActionRemoved       = "removed"
	ActionMarkedPending = "marked_pending"
	ActionAssigned      = "assigned"
)

// SyncResult is the outcome of a single-item operation. Failures are
// carried in the result rather than raised, so batch callers can keep
// going.
type SyncResult struct {
	Success      bool      `json:"success"`
	Action       string    `json:"action,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	NeedsSeating bool      `json:"needsSeating,omitempty"`
	Code         ErrorCode `json:"code,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// Failure builds a failed SyncResult with the given code and message.
func Failure(code ErrorCode, msg string) SyncResult {
	return SyncResult{Success: false, Code: code, Error: msg}
}
