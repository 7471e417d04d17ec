package seating

import (
	"wedding-planner/core/storage"
	"wedding-planner/feature/seating/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	cfg     Config
}

// NewFeature creates the seating feature.
func NewFeature(st store.Store, client storage.Client, bucket string, logger *zap.Logger, cfg Config) *Feature {
	svc := NewService(st, client, bucket, logger, cfg)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, cfg: cfg}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "seating"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
