package seating_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"wedding-planner/feature/seating"
	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, *store.Memory) {
	t.Helper()
	svc, mem := newService(t, nil)
	app := fiber.New()
	seating.NewHandler(svc).RegisterRoutes(app)
	return app, mem
}

type testResponse struct {
	Code int
	Body []byte
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) testResponse {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest("POST", path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 2000) // 2s timeout
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testResponse{Code: resp.StatusCode, Body: data}
}

func decodeBody[T any](t *testing.T, resp testResponse) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Body, &v))
	return v
}

func TestHandleSyncAll(t *testing.T) {
	app, mem := newApp(t)
	ctx := context.Background()
	require.NoError(t, mem.CreateGuest(ctx, weddingID, models.Guest{ID: "g1", Status: models.StatusConfirmed}))
	require.NoError(t, mem.CreateGuest(ctx, weddingID, models.Guest{ID: "g2", Status: models.StatusDeclined}))

	rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/sync", nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)

	report := decodeBody[models.SyncReport](t, rec)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.NeedsSeating)
	assert.Equal(t, 1, report.Removed)
}

func TestHandleSyncGuest(t *testing.T) {
	app, mem := newApp(t)
	require.NoError(t, mem.CreateGuest(context.Background(), weddingID, models.Guest{ID: "g1", Status: models.StatusConfirmed}))

	t.Run("Known Guest", func(t *testing.T) {
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/sync/g1", nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)

		result := decodeBody[models.SyncResult](t, rec)
		assert.True(t, result.Success)
		assert.Equal(t, models.ActionMarkedPending, result.Action)
	})

	t.Run("Unknown Guest", func(t *testing.T) {
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/sync/ghost", nil)
		assert.Equal(t, fiber.StatusNotFound, rec.Code)

		result := decodeBody[models.SyncResult](t, rec)
		assert.Equal(t, models.CodeNotFound, result.Code)
	})
}

func TestHandleReverseSync_RouteNotShadowed(t *testing.T) {
	app, mem := newApp(t)
	ctx := context.Background()
	require.NoError(t, mem.UpsertSeating(ctx, weddingID, models.SeatingAssignment{ID: "gone", GuestID: "gone", TableID: "t1", GuestName: "Lost"}))

	// "reverse" must hit the reverse-sync route, not resolve as a guest ID.
	rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/sync/reverse", nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)

	report := decodeBody[models.ReverseSyncReport](t, rec)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, []string{"gone"}, report.Recovered)
}

func TestHandleConflictsAndResolve(t *testing.T) {
	app, mem := newApp(t)
	ctx := context.Background()
	require.NoError(t, mem.CreateGuest(ctx, weddingID, models.Guest{ID: "g1", Name: "Ada", Status: models.StatusConfirmed}))
	require.NoError(t, mem.CreateTables(ctx, weddingID, []models.Table{{ID: "t1", Capacity: 10}}))

	req := httptest.NewRequest("GET", "/weddings/"+weddingID+"/seating/conflicts", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var conflicts []models.Conflict
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&conflicts))
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictMissingSeating, conflicts[0].Type)

	t.Run("Resolve", func(t *testing.T) {
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/conflicts/resolve", fiber.Map{
			"conflict":   conflicts[0],
			"resolution": models.ResolutionAutoAssign,
		})
		assert.Equal(t, fiber.StatusOK, rec.Code)

		result := decodeBody[models.SyncResult](t, rec)
		assert.True(t, result.Success)
		assert.Equal(t, models.ActionAssigned, result.Action)
	})

	t.Run("Unsupported Resolution", func(t *testing.T) {
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/conflicts/resolve", fiber.Map{
			"conflict":   models.Conflict{Type: models.ConflictOrphanSeating, SeatingID: "x"},
			"resolution": "teleport",
		})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)

		result := decodeBody[models.SyncResult](t, rec)
		assert.Equal(t, models.CodeUnsupportedResolution, result.Code)
	})

	t.Run("No Capacity", func(t *testing.T) {
		require.NoError(t, mem.CreateGuest(ctx, weddingID, models.Guest{ID: "g2", Name: "Ben", Status: models.StatusConfirmed}))
		// Fill the only table past its capacity check.
		for i := 0; i < 9; i++ {
			id := string(rune('a' + i))
			require.NoError(t, mem.UpsertSeating(ctx, weddingID, models.SeatingAssignment{ID: id, GuestID: id, TableID: "t1"}))
		}

		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/conflicts/resolve", fiber.Map{
			"conflict":   models.Conflict{Type: models.ConflictMissingSeating, GuestID: "g2"},
			"resolution": models.ResolutionAutoAssign,
		})
		assert.Equal(t, fiber.StatusConflict, rec.Code)

		result := decodeBody[models.SyncResult](t, rec)
		assert.Equal(t, models.CodeNoCapacity, result.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/weddings/"+weddingID+"/seating/conflicts/resolve", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleGenerateLayout(t *testing.T) {
	app, mem := newApp(t)
	ctx := context.Background()
	for _, id := range []string{"g1", "g2", "g3"} {
		require.NoError(t, mem.CreateGuest(ctx, weddingID, models.Guest{ID: id, Status: models.StatusConfirmed}))
	}

	t.Run("Default Strategy", func(t *testing.T) {
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/layout", nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)

		result := decodeBody[models.LayoutResult](t, rec)
		assert.Equal(t, 1, result.TotalTables)
	})

	t.Run("Unknown Strategy", func(t *testing.T) {
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/layout", fiber.Map{"strategy": "spiral"})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})

	t.Run("Explicit Hall", func(t *testing.T) {
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/layout", fiber.Map{
			"strategy": "circular",
			"hall":     models.HallSize{Width: 3000, Height: 2000},
		})
		assert.Equal(t, fiber.StatusOK, rec.Code)
	})
}

func TestHandleLastReport(t *testing.T) {
	app, mem := newApp(t)
	ctx := context.Background()

	t.Run("No Report Yet", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/weddings/"+weddingID+"/seating/report", nil)
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("After Sync", func(t *testing.T) {
		require.NoError(t, mem.CreateGuest(ctx, weddingID, models.Guest{ID: "g1", Status: models.StatusConfirmed}))
		rec := postJSON(t, app, "/weddings/"+weddingID+"/seating/sync", nil)
		require.Equal(t, fiber.StatusOK, rec.Code)

		req := httptest.NewRequest("GET", "/weddings/"+weddingID+"/seating/report", nil)
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report models.SyncReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, 1, report.Total)
	})
}
