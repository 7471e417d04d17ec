package seating

import (
	"errors"

	"wedding-planner/core/logger"
	"wedding-planner/feature/seating/layout"
	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for seating.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the seating routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/weddings/:weddingId/seating")
	group.Post("/sync", h.HandleSyncAll)
	// Register before /sync/:guestId so "reverse" is not read as a guest ID.
	group.Post("/sync/reverse", h.HandleReverseSync)
	group.Post("/sync/:guestId", h.HandleSyncGuest)
	group.Get("/conflicts", h.HandleConflicts)
	group.Post("/conflicts/resolve", h.HandleResolveConflict)
	group.Post("/layout", h.HandleGenerateLayout)
	group.Get("/report", h.HandleLastReport)
}

type resolveRequest struct {
	Conflict   models.Conflict `json:"conflict"`
	Resolution string          `json:"resolution"`
}

type layoutRequest struct {
	Strategy string           `json:"strategy"`
	Hall     *models.HallSize `json:"hall"`
}

// HandleSyncAll reconciles every guest of the wedding.
// @Summary Sync all guests
// @Description Reconciles every guest's RSVP status into seating state and returns the run's report.
// @Tags seating
// @Produce json
// @Param weddingId path string true "Wedding ID"
// @Success 200 {object} models.SyncReport "Sync Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /weddings/{weddingId}/seating/sync [post]
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	weddingID := c.Params("weddingId")
	l := logger.WithWedding(logger.WithRayID(h.service.logger, c), weddingID)

	report, err := h.service.SyncAll(c.Context(), weddingID)
	if err != nil {
		l.Error("Guest sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// HandleSyncGuest reconciles a single guest.
// @Summary Sync one guest
// @Description Reconciles a single guest's RSVP status into seating state.
// @Tags seating
// @Produce json
// @Param weddingId path string true "Wedding ID"
// @Param guestId path string true "Guest ID"
// @Success 200 {object} models.SyncResult "Sync Result"
// @Failure 404 {object} models.SyncResult "Guest Not Found"
// @Router /weddings/{weddingId}/seating/sync/{guestId} [post]
func (h *Handler) HandleSyncGuest(c *fiber.Ctx) error {
	weddingID := c.Params("weddingId")
	guestID := c.Params("guestId")

	result := h.service.SyncGuest(c.Context(), weddingID, guestID)
	return c.Status(statusForResult(result)).JSON(result)
}

// HandleReverseSync pushes seating state back onto guest records.
// @Summary Reverse sync
// @Description Pushes seating assignments back onto guest records, recovering guests from orphaned rows.
// @Tags seating
// @Produce json
// @Param weddingId path string true "Wedding ID"
// @Success 200 {object} models.ReverseSyncReport "Reverse Sync Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /weddings/{weddingId}/seating/sync/reverse [post]
func (h *Handler) HandleReverseSync(c *fiber.Ctx) error {
	weddingID := c.Params("weddingId")
	l := logger.WithWedding(logger.WithRayID(h.service.logger, c), weddingID)

	report, err := h.service.ReverseSync(c.Context(), weddingID)
	if err != nil {
		l.Error("Reverse sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// HandleConflicts lists guest/seating inconsistencies.
// @Summary List conflicts
// @Description Scans the wedding and lists every guest/seating inconsistency.
// @Tags seating
// @Produce json
// @Param weddingId path string true "Wedding ID"
// @Success 200 {array} models.Conflict "Conflicts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /weddings/{weddingId}/seating/conflicts [get]
func (h *Handler) HandleConflicts(c *fiber.Ctx) error {
	weddingID := c.Params("weddingId")
	l := logger.WithWedding(logger.WithRayID(h.service.logger, c), weddingID)

	conflicts, err := h.service.Conflicts(c.Context(), weddingID)
	if err != nil {
		l.Error("Conflict detection failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(conflicts)
}

// HandleResolveConflict applies a resolution strategy to one conflict.
// @Summary Resolve a conflict
// @Description Applies the requested resolution strategy to a single conflict.
// @Tags seating
// @Accept json
// @Produce json
// @Param weddingId path string true "Wedding ID"
// @Param request body resolveRequest true "Conflict and resolution"
// @Success 200 {object} models.SyncResult "Resolution Result"
// @Failure 400 {object} models.SyncResult "Unsupported Resolution"
// @Failure 409 {object} models.SyncResult "No Capacity"
// @Router /weddings/{weddingId}/seating/conflicts/resolve [post]
func (h *Handler) HandleResolveConflict(c *fiber.Ctx) error {
	weddingID := c.Params("weddingId")

	var req resolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result := h.service.Resolve(c.Context(), weddingID, req.Conflict, req.Resolution)
	return c.Status(statusForResult(result)).JSON(result)
}

// HandleGenerateLayout places the wedding's tables in the hall.
// @Summary Generate a layout
// @Description Places the wedding's tables with the requested strategy, deriving tables from the guest list when none exist.
// @Tags seating
// @Accept json
// @Produce json
// @Param weddingId path string true "Wedding ID"
// @Param request body layoutRequest false "Strategy and hall size"
// @Success 200 {object} models.LayoutResult "Layout"
// @Failure 400 {object} map[string]string "Unknown Strategy"
// @Router /weddings/{weddingId}/seating/layout [post]
func (h *Handler) HandleGenerateLayout(c *fiber.Ctx) error {
	weddingID := c.Params("weddingId")
	l := logger.WithWedding(logger.WithRayID(h.service.logger, c), weddingID)

	var req layoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	result, err := h.service.GenerateLayout(c.Context(), weddingID, req.Strategy, req.Hall)
	if errors.Is(err, layout.ErrUnknownStrategy) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Layout generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(result)
}

// HandleLastReport returns the wedding's most recent sync report.
// @Summary Last sync report
// @Description Returns the report of the wedding's most recent full sync.
// @Tags seating
// @Produce json
// @Param weddingId path string true "Wedding ID"
// @Success 200 {object} models.SyncReport "Sync Report"
// @Failure 404 {object} map[string]string "No Report"
// @Router /weddings/{weddingId}/seating/report [get]
func (h *Handler) HandleLastReport(c *fiber.Ctx) error {
	weddingID := c.Params("weddingId")
	l := logger.WithWedding(logger.WithRayID(h.service.logger, c), weddingID)

	report, err := h.service.LastReport(c.Context(), weddingID)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no sync report for this wedding",
		})
	}
	if err != nil {
		l.Error("Report lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// statusForResult maps a result's error code to an HTTP status.
func statusForResult(r models.SyncResult) int {
	if r.Success {
		return fiber.StatusOK
	}
	switch r.Code {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeNoCapacity:
		return fiber.StatusConflict
	case models.CodeUnsupportedResolution:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
