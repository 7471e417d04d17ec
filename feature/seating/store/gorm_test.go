package store_test

import (
	"context"
	"testing"
	"time"

	"wedding-planner/core/database"
	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const weddingID = "wedding-1"

func newGormStore(t *testing.T) *store.Gorm {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	s := store.NewGorm(db)
	require.NoError(t, s.Migrate())
	return s
}

func TestGormStore_Guests(t *testing.T) {
	ctx := context.Background()
	s := newGormStore(t)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	guests := []models.Guest{
		{ID: "g1", Name: "Ada", Status: models.StatusConfirmed, Allergens: []string{"nuts"}, TableName: "Garden", CreatedAt: base},
		{ID: "g2", Name: "Ben", Status: models.StatusPending, CreatedAt: base.Add(time.Minute)},
		{ID: "g3", Name: "Cleo", Status: models.StatusConfirmed, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, g := range guests {
		require.NoError(t, s.CreateGuest(ctx, weddingID, g))
	}

	t.Run("Get", func(t *testing.T) {
		guest, err := s.GetGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", guest.Name)
		assert.Equal(t, []string{"nuts"}, guest.Allergens)
		// Legacy free-text table reference survives the column round-trip.
		assert.Equal(t, "Garden", guest.TableName)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := s.GetGuest(ctx, weddingID, "ghost")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Wedding Isolation", func(t *testing.T) {
		_, err := s.GetGuest(ctx, "other-wedding", "g1")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("List Ordered By Creation", func(t *testing.T) {
		listed, err := s.ListGuests(ctx, weddingID)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "g1", listed[0].ID)
		assert.Equal(t, "g2", listed[1].ID)
		assert.Equal(t, "g3", listed[2].ID)
	})

	t.Run("List By Status", func(t *testing.T) {
		confirmed, err := s.ListGuestsByStatus(ctx, weddingID, models.StatusConfirmed)
		require.NoError(t, err)
		require.Len(t, confirmed, 2)
		assert.Equal(t, "g1", confirmed[0].ID)
		assert.Equal(t, "g3", confirmed[1].ID)
	})

	t.Run("Merge Update", func(t *testing.T) {
		err := s.UpdateGuest(ctx, weddingID, "g2", map[string]any{
			store.FieldNeedsSeating:  true,
			store.FieldSeatingStatus: models.SeatingStatusPending,
		})
		require.NoError(t, err)

		guest, err := s.GetGuest(ctx, weddingID, "g2")
		require.NoError(t, err)
		assert.True(t, guest.NeedsSeating)
		assert.Equal(t, models.SeatingStatusPending, guest.SeatingStatus)
		// Untouched fields survive the merge.
		assert.Equal(t, "Ben", guest.Name)
	})

	t.Run("Update Missing Guest", func(t *testing.T) {
		err := s.UpdateGuest(ctx, weddingID, "ghost", map[string]any{store.FieldName: "X"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Update Unknown Field", func(t *testing.T) {
		err := s.UpdateGuest(ctx, weddingID, "g1", map[string]any{"shoeSize": 44})
		assert.Error(t, err)
	})
}

func TestGormStore_Seating(t *testing.T) {
	ctx := context.Background()
	s := newGormStore(t)

	seat := 3
	require.NoError(t, s.UpsertSeating(ctx, weddingID, models.SeatingAssignment{
		ID: "g1", GuestID: "g1", TableID: "t1", SeatNumber: &seat, GuestName: "Ada",
	}))
	require.NoError(t, s.UpsertSeating(ctx, weddingID, models.SeatingAssignment{
		ID: "g2", GuestID: "g2", TableID: "t1",
	}))

	t.Run("By Guest", func(t *testing.T) {
		rows, err := s.SeatingByGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "t1", rows[0].TableID)
		require.NotNil(t, rows[0].SeatNumber)
		assert.Equal(t, 3, *rows[0].SeatNumber)
	})

	t.Run("Upsert Overwrites Existing Row", func(t *testing.T) {
		require.NoError(t, s.UpsertSeating(ctx, weddingID, models.SeatingAssignment{
			ID: "g1", GuestID: "g1", TableID: "t2", GuestName: "Ada Updated",
		}))

		rows, err := s.SeatingByGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "t2", rows[0].TableID)
		assert.Equal(t, "Ada Updated", rows[0].GuestName)
	})

	t.Run("Batch Field Update", func(t *testing.T) {
		err := s.UpdateSeatingForGuest(ctx, weddingID, "g1", map[string]any{
			store.FieldGuestName:  "Ada L.",
			store.FieldDietary:    []string{"vegan"},
			store.FieldCompanions: 1,
		})
		require.NoError(t, err)

		rows, err := s.SeatingByGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Ada L.", rows[0].GuestName)
		assert.Equal(t, []string{"vegan"}, rows[0].Dietary)
		assert.Equal(t, 1, rows[0].Companions)
	})

	t.Run("Delete By ID", func(t *testing.T) {
		require.NoError(t, s.DeleteSeating(ctx, weddingID, "g2"))
		assert.ErrorIs(t, s.DeleteSeating(ctx, weddingID, "g2"), store.ErrNotFound)
	})

	t.Run("Delete For Guest Is Idempotent", func(t *testing.T) {
		require.NoError(t, s.DeleteSeatingForGuest(ctx, weddingID, "g1"))
		require.NoError(t, s.DeleteSeatingForGuest(ctx, weddingID, "g1"))

		rows, err := s.ListSeating(ctx, weddingID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestGormStore_TablesAndReports(t *testing.T) {
	ctx := context.Background()
	s := newGormStore(t)

	t.Run("Tables", func(t *testing.T) {
		require.NoError(t, s.CreateTables(ctx, weddingID, []models.Table{
			{ID: "t1", Name: "Table 1", Capacity: 10, X: 660, Y: 480, Shape: "circle"},
			{ID: "t2", Name: "Table 2", Seats: 8},
		}))

		tables, err := s.ListTables(ctx, weddingID)
		require.NoError(t, err)
		require.Len(t, tables, 2)
		assert.Equal(t, 660.0, tables[0].X)

		table, err := s.GetTable(ctx, weddingID, "t2")
		require.NoError(t, err)
		assert.Equal(t, 8, table.EffectiveCapacity())

		_, err = s.GetTable(ctx, weddingID, "t9")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Report Overwritten Per Wedding", func(t *testing.T) {
		_, err := s.GetSyncReport(ctx, weddingID)
		assert.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.SaveSyncReport(ctx, weddingID, models.SyncReport{Total: 5, Synced: 5, Timestamp: time.Now()}))
		require.NoError(t, s.SaveSyncReport(ctx, weddingID, models.SyncReport{Total: 7, Synced: 6, Errors: 1, Timestamp: time.Now()}))

		report, err := s.GetSyncReport(ctx, weddingID)
		require.NoError(t, err)
		assert.Equal(t, 7, report.Total)
		assert.Equal(t, 1, report.Errors)
	})

	t.Run("Sync Log Appends", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.NoError(t, s.AppendSyncLog(ctx, weddingID, models.SyncLogEntry{
				Action: "remove_seating", GuestID: "g1", Reason: "not_confirmed", Timestamp: time.Now(),
			}))
		}
	})
}

// The MySQL path only differs in dialect; one sqlmock round-trip guards
// the generated update against regressions.
func TestGormStore_MySQLUpdateGuest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	s := store.NewGorm(gormDB)

	// GORM also bumps updated_at on map updates.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `guests` SET `needs_seating`=\\?,`updated_at`=\\? WHERE wedding_id = \\? AND id = \\?").
		WithArgs(true, sqlmock.AnyArg(), weddingID, "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = s.UpdateGuest(context.Background(), weddingID, "g1", map[string]any{
		store.FieldNeedsSeating: true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
