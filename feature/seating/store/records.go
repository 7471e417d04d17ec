package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"wedding-planner/feature/seating/models"
)

// StringList stores a slice of strings as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// guestRecord is the 'guests' table.
type guestRecord struct {
	WeddingID     string     `gorm:"column:wedding_id;primaryKey;size:64"`
	ID            string     `gorm:"column:id;primaryKey;size:64"`
	Name          string     `gorm:"column:name"`
	Email         string     `gorm:"column:email"`
	Status        string     `gorm:"column:status;size:16;index"`
	Companions    int        `gorm:"column:companions"`
	Allergens     StringList `gorm:"column:allergens;type:text"`
	NeedsSeating  bool       `gorm:"column:needs_seating"`
	SeatingStatus string     `gorm:"column:seating_status;size:16"`
	HasSeating    bool       `gorm:"column:has_seating"`
	TableID       string     `gorm:"column:table_id;size:64"`
	// LegacyTable avoids colliding with the TableName method gorm expects.
	LegacyTable string `gorm:"column:table_name"`
	SeatNumber    *int       `gorm:"column:seat_number"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (guestRecord) TableName() string { return "guests" }

func (r guestRecord) toModel() models.Guest {
	return models.Guest{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Status:        r.Status,
		Companions:    r.Companions,
		Allergens:     r.Allergens,
		NeedsSeating:  r.NeedsSeating,
		SeatingStatus: r.SeatingStatus,
		HasSeating:    r.HasSeating,
		TableID:       r.TableID,
		TableName:     r.LegacyTable,
		SeatNumber:    r.SeatNumber,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func guestToRecord(weddingID string, g models.Guest) guestRecord {
	return guestRecord{
		WeddingID:     weddingID,
		ID:            g.ID,
		Name:          g.Name,
		Email:         g.Email,
		Status:        g.Status,
		Companions:    g.Companions,
		Allergens:     StringList(g.Allergens),
		NeedsSeating:  g.NeedsSeating,
		SeatingStatus: g.SeatingStatus,
		HasSeating:    g.HasSeating,
		TableID:       g.TableID,
		LegacyTable:   g.TableName,
		SeatNumber:    g.SeatNumber,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// seatingRecord is the 'seating' table.
type seatingRecord struct {
	WeddingID  string     `gorm:"column:wedding_id;primaryKey;size:64"`
	ID         string     `gorm:"column:id;primaryKey;size:64"`
	GuestID    string     `gorm:"column:guest_id;size:64;index"`
	TableID    string     `gorm:"column:table_id;size:64;index"`
	SeatNumber *int       `gorm:"column:seat_number"`
	GuestName  string     `gorm:"column:guest_name"`
	GuestEmail string     `gorm:"column:guest_email"`
	Dietary    StringList `gorm:"column:dietary;type:text"`
	Companions int        `gorm:"column:companions"`
	AssignedAt time.Time  `gorm:"column:assigned_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (seatingRecord) TableName() string { return "seating" }

func (r seatingRecord) toModel() models.SeatingAssignment {
	return models.SeatingAssignment{
		ID:         r.ID,
		GuestID:    r.GuestID,
		TableID:    r.TableID,
		SeatNumber: r.SeatNumber,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Dietary:    r.Dietary,
		Companions: r.Companions,
		AssignedAt: r.AssignedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func seatingToRecord(weddingID string, a models.SeatingAssignment) seatingRecord {
	return seatingRecord{
		WeddingID:  weddingID,
		ID:         a.ID,
		GuestID:    a.GuestID,
		TableID:    a.TableID,
		SeatNumber: a.SeatNumber,
		GuestName:  a.GuestName,
		GuestEmail: a.GuestEmail,
		Dietary:    StringList(a.Dietary),
		Companions: a.Companions,
		AssignedAt: a.AssignedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// tableRecord is the 'seating_tables' table.
type tableRecord struct {
	WeddingID    string    `gorm:"column:wedding_id;primaryKey;size:64"`
	ID           string    `gorm:"column:id;primaryKey;size:64"`
	Name         string    `gorm:"column:name"`
	Capacity     int       `gorm:"column:capacity"`
	Seats        int       `gorm:"column:seats"`
	X            float64   `gorm:"column:x"`
	Y            float64   `gorm:"column:y"`
	Diameter     float64   `gorm:"column:diameter"`
	Shape        string    `gorm:"column:shape;size:16"`
	TableType    string    `gorm:"column:table_type;size:16"`
	Enabled      bool      `gorm:"column:enabled"`
	AutoCapacity bool      `gorm:"column:auto_capacity"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (tableRecord) TableName() string { return "seating_tables" }

func (r tableRecord) toModel() models.Table {
	return models.Table{
		ID:           r.ID,
		Name:         r.Name,
		Capacity:     r.Capacity,
		Seats:        r.Seats,
		X:            r.X,
		Y:            r.Y,
		Diameter:     r.Diameter,
		Shape:        r.Shape,
		TableType:    r.TableType,
		Enabled:      r.Enabled,
		AutoCapacity: r.AutoCapacity,
	}
}

func tableToRecord(weddingID string, t models.Table) tableRecord {
	return tableRecord{
		WeddingID:    weddingID,
		ID:           t.ID,
		Name:         t.Name,
		Capacity:     t.Capacity,
		Seats:        t.Seats,
		X:            t.X,
		Y:            t.Y,
		Diameter:     t.Diameter,
		Shape:        t.Shape,
		TableType:    t.TableType,
		Enabled:      t.Enabled,
		AutoCapacity: t.AutoCapacity,
	}
}

// syncReportRecord is the 'sync_reports' table, one row per wedding.
type syncReportRecord struct {
	WeddingID    string    `gorm:"column:wedding_id;primaryKey;size:64"`
	Total        int       `gorm:"column:total"`
	Synced       int       `gorm:"column:synced"`
	Removed      int       `gorm:"column:removed"`
	NeedsSeating int       `gorm:"column:needs_seating"`
	Errors       int       `gorm:"column:errors"`
	Timestamp    time.Time `gorm:"column:timestamp"`
}

func (syncReportRecord) TableName() string { return "sync_reports" }

// syncLogRecord is the append-only 'sync_logs' table.
type syncLogRecord struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	WeddingID string    `gorm:"column:wedding_id;size:64;index"`
	Action    string    `gorm:"column:action;size:32"`
	GuestID   string    `gorm:"column:guest_id;size:64"`
	Reason    string    `gorm:"column:reason"`
	Timestamp time.Time `gorm:"column:timestamp"`
}

func (syncLogRecord) TableName() string { return "sync_logs" }
