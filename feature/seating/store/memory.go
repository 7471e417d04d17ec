package store

import (
	"context"
	"fmt"
	"sync"

	"wedding-planner/core/utils"
	"wedding-planner/feature/seating/models"
)

// Memory is an in-memory Store. Listings preserve insertion order, which
// keeps batch passes and capacity tie-breaking deterministic in tests.
type Memory struct {
	mu      sync.RWMutex
	guests  map[string][]*models.Guest
	seating map[string][]*models.SeatingAssignment
	tables  map[string][]models.Table
	reports map[string]models.SyncReport
	logs    map[string][]models.SyncLogEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		guests:  make(map[string][]*models.Guest),
		seating: make(map[string][]*models.SeatingAssignment),
		tables:  make(map[string][]models.Table),
		reports: make(map[string]models.SyncReport),
		logs:    make(map[string][]models.SyncLogEntry),
	}
}

func (s *Memory) GetGuest(ctx context.Context, weddingID, guestID string) (*models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.guests[weddingID] {
		if g.ID == guestID {
			copied := *g
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) ListGuests(ctx context.Context, weddingID string) ([]models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	guests := make([]models.Guest, 0, len(s.guests[weddingID]))
	for _, g := range s.guests[weddingID] {
		guests = append(guests, *g)
	}
	return guests, nil
}

func (s *Memory) ListGuestsByStatus(ctx context.Context, weddingID, status string) ([]models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var guests []models.Guest
	for _, g := range s.guests[weddingID] {
		if g.Status == status {
			guests = append(guests, *g)
		}
	}
	return guests, nil
}

func (s *Memory) CreateGuest(ctx context.Context, weddingID string, guest models.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests[weddingID] {
		if g.ID == guest.ID {
			return fmt.Errorf("guest %s already exists", guest.ID)
		}
	}
	copied := guest
	s.guests[weddingID] = append(s.guests[weddingID], &copied)
	return nil
}

func (s *Memory) UpdateGuest(ctx context.Context, weddingID, guestID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests[weddingID] {
		if g.ID == guestID {
			return applyGuestFields(g, fields)
		}
	}
	return ErrNotFound
}

func (s *Memory) SeatingByGuest(ctx context.Context, weddingID, guestID string) ([]models.SeatingAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var assignments []models.SeatingAssignment
	for _, a := range s.seating[weddingID] {
		if a.GuestID == guestID {
			assignments = append(assignments, *a)
		}
	}
	return assignments, nil
}

func (s *Memory) ListSeating(ctx context.Context, weddingID string) ([]models.SeatingAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignments := make([]models.SeatingAssignment, 0, len(s.seating[weddingID]))
	for _, a := range s.seating[weddingID] {
		assignments = append(assignments, *a)
	}
	return assignments, nil
}

func (s *Memory) UpsertSeating(ctx context.Context, weddingID string, assignment models.SeatingAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.seating[weddingID] {
		if a.ID == assignment.ID {
			*a = assignment
			return nil
		}
	}
	copied := assignment
	s.seating[weddingID] = append(s.seating[weddingID], &copied)
	return nil
}

func (s *Memory) UpdateSeatingForGuest(ctx context.Context, weddingID, guestID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.seating[weddingID] {
		if a.GuestID == guestID {
			if err := applySeatingFields(a, fields); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Memory) DeleteSeating(ctx context.Context, weddingID, seatingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.seating[weddingID]
	for i, a := range rows {
		if a.ID == seatingID {
			s.seating[weddingID] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Memory) DeleteSeatingForGuest(ctx context.Context, weddingID, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.seating[weddingID]
	kept := rows[:0:0]
	for _, a := range rows {
		if a.GuestID != guestID {
			kept = append(kept, a)
		}
	}
	s.seating[weddingID] = kept
	return nil
}

func (s *Memory) ListTables(ctx context.Context, weddingID string) ([]models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := make([]models.Table, len(s.tables[weddingID]))
	copy(tables, s.tables[weddingID])
	return tables, nil
}

func (s *Memory) GetTable(ctx context.Context, weddingID, tableID string) (*models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tables[weddingID] {
		if t.ID == tableID {
			copied := t
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateTables(ctx context.Context, weddingID string, tables []models.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[weddingID] = append(s.tables[weddingID], tables...)
	return nil
}

func (s *Memory) SaveSyncReport(ctx context.Context, weddingID string, report models.SyncReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[weddingID] = report
	return nil
}

func (s *Memory) GetSyncReport(ctx context.Context, weddingID string) (*models.SyncReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[weddingID]
	if !ok {
		return nil, ErrNotFound
	}
	return &report, nil
}

func (s *Memory) AppendSyncLog(ctx context.Context, weddingID string, entry models.SyncLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[weddingID] = append(s.logs[weddingID], entry)
	return nil
}

// SyncLogs returns the audit entries recorded for a wedding. Test helper.
func (s *Memory) SyncLogs(weddingID string) []models.SyncLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logs := make([]models.SyncLogEntry, len(s.logs[weddingID]))
	copy(logs, s.logs[weddingID])
	return logs
}

// applyGuestFields merges canonical document fields into a guest record.
// Values arrive loosely typed, so they are coerced the same way the
// legacy records were read.
func applyGuestFields(g *models.Guest, fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case FieldName:
			g.Name = utils.ToString(value)
		case FieldEmail:
			g.Email = utils.ToString(value)
		case FieldStatus:
			g.Status = utils.ToString(value)
		case FieldCompanions:
			g.Companions = utils.ToInt(value)
		case FieldNeedsSeating:
			g.NeedsSeating = utils.ToBool(value)
		case FieldSeatingStatus:
			g.SeatingStatus = utils.ToString(value)
		case FieldHasSeating:
			g.HasSeating = utils.ToBool(value)
		case FieldTableID:
			g.TableID = utils.ToString(value)
		case FieldSeatNumber:
			g.SeatNumber = toSeatNumber(value)
		default:
			return fmt.Errorf("unknown guest field %q", key)
		}
	}
	return nil
}

// applySeatingFields merges canonical document fields into an assignment.
func applySeatingFields(a *models.SeatingAssignment, fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case FieldGuestName:
			a.GuestName = utils.ToString(value)
		case FieldGuestEmail:
			a.GuestEmail = utils.ToString(value)
		case FieldDietary:
			a.Dietary = toStringSlice(value)
		case FieldCompanions:
			a.Companions = utils.ToInt(value)
		case FieldTableID:
			a.TableID = utils.ToString(value)
		case FieldSeatNumber:
			a.SeatNumber = toSeatNumber(value)
		default:
			return fmt.Errorf("unknown seating field %q", key)
		}
	}
	return nil
}

func toSeatNumber(value any) *int {
	switch v := value.(type) {
	case nil:
		return nil
	case *int:
		return v
	default:
		n := utils.ToInt(v)
		return &n
	}
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case StringList:
		return v
	default:
		return []string{utils.ToString(v)}
	}
}
