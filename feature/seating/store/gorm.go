package store

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/feature/seating/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// guestColumns maps canonical document fields to guest columns.
var guestColumns = map[string]string{
	FieldName:          "name",
	FieldEmail:         "email",
	FieldStatus:        "status",
	FieldCompanions:    "companions",
	FieldNeedsSeating:  "needs_seating",
	FieldSeatingStatus: "seating_status",
	FieldHasSeating:    "has_seating",
	FieldTableID:       "table_id",
	FieldSeatNumber:    "seat_number",
}

// seatingColumns maps canonical document fields to seating columns.
var seatingColumns = map[string]string{
	FieldGuestName:  "guest_name",
	FieldGuestEmail: "guest_email",
	FieldDietary:    "dietary",
	FieldCompanions: "companions",
	FieldTableID:    "table_id",
	FieldSeatNumber: "seat_number",
}

// Gorm is the relational implementation of Store.
type Gorm struct {
	db *gorm.DB
}

// NewGorm creates a Store backed by the given gorm connection.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Migrate creates or updates the schema for all seating collections.
func (s *Gorm) Migrate() error {
	return s.db.AutoMigrate(
		&guestRecord{},
		&seatingRecord{},
		&tableRecord{},
		&syncReportRecord{},
		&syncLogRecord{},
	)
}

func (s *Gorm) GetGuest(ctx context.Context, weddingID, guestID string) (*models.Guest, error) {
	var rec guestRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, guestID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	guest := rec.toModel()
	return &guest, nil
}

func (s *Gorm) ListGuests(ctx context.Context, weddingID string) ([]models.Guest, error) {
	var recs []guestRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	guests := make([]models.Guest, 0, len(recs))
	for _, rec := range recs {
		guests = append(guests, rec.toModel())
	}
	return guests, nil
}

func (s *Gorm) ListGuestsByStatus(ctx context.Context, weddingID, status string) ([]models.Guest, error) {
	var recs []guestRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ? AND status = ?", weddingID, status).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list guests by status: %w", err)
	}
	guests := make([]models.Guest, 0, len(recs))
	for _, rec := range recs {
		guests = append(guests, rec.toModel())
	}
	return guests, nil
}

func (s *Gorm) CreateGuest(ctx context.Context, weddingID string, guest models.Guest) error {
	rec := guestToRecord(weddingID, guest)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (s *Gorm) UpdateGuest(ctx context.Context, weddingID, guestID string, fields map[string]any) error {
	updates, err := translateFields(fields, guestColumns, "guest")
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Model(&guestRecord{}).
		Where("wedding_id = ? AND id = ?", weddingID, guestID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update guest: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) SeatingByGuest(ctx context.Context, weddingID, guestID string) ([]models.SeatingAssignment, error) {
	var recs []seatingRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ? AND guest_id = ?", weddingID, guestID).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query seating by guest: %w", err)
	}
	assignments := make([]models.SeatingAssignment, 0, len(recs))
	for _, rec := range recs {
		assignments = append(assignments, rec.toModel())
	}
	return assignments, nil
}

func (s *Gorm) ListSeating(ctx context.Context, weddingID string) ([]models.SeatingAssignment, error) {
	var recs []seatingRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("assigned_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list seating: %w", err)
	}
	assignments := make([]models.SeatingAssignment, 0, len(recs))
	for _, rec := range recs {
		assignments = append(assignments, rec.toModel())
	}
	return assignments, nil
}

func (s *Gorm) UpsertSeating(ctx context.Context, weddingID string, assignment models.SeatingAssignment) error {
	rec := seatingToRecord(weddingID, assignment)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wedding_id"}, {Name: "id"}},
		UpdateAll: true,
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert seating: %w", err)
	}
	return nil
}

func (s *Gorm) UpdateSeatingForGuest(ctx context.Context, weddingID, guestID string, fields map[string]any) error {
	updates, err := translateFields(fields, seatingColumns, "seating")
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Model(&seatingRecord{}).
		Where("wedding_id = ? AND guest_id = ?", weddingID, guestID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update seating for guest: %w", err)
	}
	return nil
}

func (s *Gorm) DeleteSeating(ctx context.Context, weddingID, seatingID string) error {
	res := s.db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, seatingID).
		Delete(&seatingRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete seating: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) DeleteSeatingForGuest(ctx context.Context, weddingID, guestID string) error {
	err := s.db.WithContext(ctx).
		Where("wedding_id = ? AND guest_id = ?", weddingID, guestID).
		Delete(&seatingRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete seating for guest: %w", err)
	}
	return nil
}

func (s *Gorm) ListTables(ctx context.Context, weddingID string) ([]models.Table, error) {
	var recs []tableRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	tables := make([]models.Table, 0, len(recs))
	for _, rec := range recs {
		tables = append(tables, rec.toModel())
	}
	return tables, nil
}

func (s *Gorm) GetTable(ctx context.Context, weddingID, tableID string) (*models.Table, error) {
	var rec tableRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, tableID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	table := rec.toModel()
	return &table, nil
}

func (s *Gorm) CreateTables(ctx context.Context, weddingID string, tables []models.Table) error {
	if len(tables) == 0 {
		return nil
	}
	recs := make([]tableRecord, 0, len(tables))
	for _, t := range tables {
		recs = append(recs, tableToRecord(weddingID, t))
	}
	if err := s.db.WithContext(ctx).Create(&recs).Error; err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (s *Gorm) SaveSyncReport(ctx context.Context, weddingID string, report models.SyncReport) error {
	rec := syncReportRecord{
		WeddingID:    weddingID,
		Total:        report.Total,
		Synced:       report.Synced,
		Removed:      report.Removed,
		NeedsSeating: report.NeedsSeating,
		Errors:       report.Errors,
		Timestamp:    report.Timestamp,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wedding_id"}},
		UpdateAll: true,
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save sync report: %w", err)
	}
	return nil
}

func (s *Gorm) GetSyncReport(ctx context.Context, weddingID string) (*models.SyncReport, error) {
	var rec syncReportRecord
	err := s.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sync report: %w", err)
	}
	return &models.SyncReport{
		Total:        rec.Total,
		Synced:       rec.Synced,
		Removed:      rec.Removed,
		NeedsSeating: rec.NeedsSeating,
		Errors:       rec.Errors,
		Timestamp:    rec.Timestamp,
	}, nil
}

func (s *Gorm) AppendSyncLog(ctx context.Context, weddingID string, entry models.SyncLogEntry) error {
	rec := syncLogRecord{
		WeddingID: weddingID,
		Action:    entry.Action,
		GuestID:   entry.GuestID,
		Reason:    entry.Reason,
		Timestamp: entry.Timestamp,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to append sync log: %w", err)
	}
	return nil
}

// translateFields converts canonical document fields into column updates.
func translateFields(fields map[string]any, columns map[string]string, collection string) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for key, value := range fields {
		column, ok := columns[key]
		if !ok {
			return nil, fmt.Errorf("unknown %s field %q", collection, key)
		}
		if key == FieldDietary {
			switch v := value.(type) {
			case []string:
				value = StringList(v)
			case StringList:
			case nil:
				value = StringList{}
			default:
				return nil, fmt.Errorf("unsupported dietary value type %T", value)
			}
		}
		updates[column] = value
	}
	return updates, nil
}
