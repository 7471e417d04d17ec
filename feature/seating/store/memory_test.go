package store_test

import (
	"context"
	"testing"
	"time"

	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Guests(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	require.NoError(t, s.CreateGuest(ctx, weddingID, models.Guest{ID: "g1", Name: "Ada", Status: models.StatusConfirmed}))
	require.NoError(t, s.CreateGuest(ctx, weddingID, models.Guest{ID: "g2", Name: "Ben", Status: models.StatusDeclined}))

	t.Run("Duplicate Create Fails", func(t *testing.T) {
		err := s.CreateGuest(ctx, weddingID, models.Guest{ID: "g1"})
		assert.ErrorContains(t, err, "already exists")
	})

	t.Run("Get Returns Copy", func(t *testing.T) {
		guest, err := s.GetGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		guest.Name = "mutated"

		again, err := s.GetGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", again.Name)
	})

	t.Run("List Keeps Insertion Order", func(t *testing.T) {
		guests, err := s.ListGuests(ctx, weddingID)
		require.NoError(t, err)
		require.Len(t, guests, 2)
		assert.Equal(t, "g1", guests[0].ID)
		assert.Equal(t, "g2", guests[1].ID)
	})

	t.Run("List By Status", func(t *testing.T) {
		declined, err := s.ListGuestsByStatus(ctx, weddingID, models.StatusDeclined)
		require.NoError(t, err)
		require.Len(t, declined, 1)
		assert.Equal(t, "g2", declined[0].ID)
	})

	t.Run("Update Coerces Loose Values", func(t *testing.T) {
		// Legacy records carry stringly typed fields.
		err := s.UpdateGuest(ctx, weddingID, "g1", map[string]any{
			store.FieldCompanions:   "2",
			store.FieldNeedsSeating: "true",
			store.FieldSeatNumber:   5,
		})
		require.NoError(t, err)

		guest, err := s.GetGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		assert.Equal(t, 2, guest.Companions)
		assert.True(t, guest.NeedsSeating)
		require.NotNil(t, guest.SeatNumber)
		assert.Equal(t, 5, *guest.SeatNumber)
	})

	t.Run("Update Unknown Field", func(t *testing.T) {
		err := s.UpdateGuest(ctx, weddingID, "g1", map[string]any{"shoeSize": 44})
		assert.ErrorContains(t, err, "unknown guest field")
	})

	t.Run("Update Missing Guest", func(t *testing.T) {
		err := s.UpdateGuest(ctx, weddingID, "ghost", map[string]any{store.FieldName: "X"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestMemoryStore_Seating(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	require.NoError(t, s.UpsertSeating(ctx, weddingID, models.SeatingAssignment{ID: "g1", GuestID: "g1", TableID: "t1"}))
	require.NoError(t, s.UpsertSeating(ctx, weddingID, models.SeatingAssignment{ID: "g2", GuestID: "g2", TableID: "t1"}))

	t.Run("Upsert Replaces By ID", func(t *testing.T) {
		require.NoError(t, s.UpsertSeating(ctx, weddingID, models.SeatingAssignment{ID: "g1", GuestID: "g1", TableID: "t2"}))

		rows, err := s.SeatingByGuest(ctx, weddingID, "g1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "t2", rows[0].TableID)
	})

	t.Run("Batch Update Coerces Dietary Scalar", func(t *testing.T) {
		err := s.UpdateSeatingForGuest(ctx, weddingID, "g2", map[string]any{
			store.FieldDietary:   "vegetarian",
			store.FieldGuestName: "Ben",
		})
		require.NoError(t, err)

		rows, err := s.SeatingByGuest(ctx, weddingID, "g2")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"vegetarian"}, rows[0].Dietary)
		assert.Equal(t, "Ben", rows[0].GuestName)
	})

	t.Run("Delete Missing Row", func(t *testing.T) {
		assert.ErrorIs(t, s.DeleteSeating(ctx, weddingID, "ghost"), store.ErrNotFound)
	})

	t.Run("Delete For Guest Removes All And Is Idempotent", func(t *testing.T) {
		require.NoError(t, s.DeleteSeatingForGuest(ctx, weddingID, "g1"))
		require.NoError(t, s.DeleteSeatingForGuest(ctx, weddingID, "g1"))

		rows, err := s.ListSeating(ctx, weddingID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "g2", rows[0].GuestID)
	})
}

func TestMemoryStore_ReportsAndLogs(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	_, err := s.GetSyncReport(ctx, weddingID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.SaveSyncReport(ctx, weddingID, models.SyncReport{Total: 3, Timestamp: time.Now()}))
	require.NoError(t, s.SaveSyncReport(ctx, weddingID, models.SyncReport{Total: 4, Errors: 1, Timestamp: time.Now()}))

	report, err := s.GetSyncReport(ctx, weddingID)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 1, report.Errors)

	require.NoError(t, s.AppendSyncLog(ctx, weddingID, models.SyncLogEntry{Action: "remove_seating", GuestID: "g1"}))
	require.NoError(t, s.AppendSyncLog(ctx, weddingID, models.SyncLogEntry{Action: "remove_seating", GuestID: "g2"}))

	logs := s.SyncLogs(weddingID)
	require.Len(t, logs, 2)
	assert.Equal(t, "g1", logs[0].GuestID)

	// Reports are scoped per wedding.
	_, err = s.GetSyncReport(ctx, "other-wedding")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
