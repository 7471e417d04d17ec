package seating

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"wedding-planner/core/storage"
	"wedding-planner/feature/seating/capacity"
	"wedding-planner/feature/seating/conflict"
	"wedding-planner/feature/seating/layout"
	"wedding-planner/feature/seating/models"
	"wedding-planner/feature/seating/store"
	"wedding-planner/feature/seating/sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Export object keys, per wedding.
const (
	layoutObjectFmt = "layouts/%s.json"
	reportObjectFmt = "reports/%s.json"
)

// Service ties the seating engine together: reconciliation, conflict
// handling, layout generation, and export of the results to object
// storage.
type Service struct {
	store      store.Store
	client     storage.Client
	bucket     string
	logger     *zap.Logger
	cfg        Config
	reconciler *sync.Reconciler
	detector   *conflict.Detector
	resolver   *conflict.Resolver
	engine     *layout.Engine
	index      *capacity.Index
}

// NewService creates a new seating service. The conflict detector reads
// through a TTL-cached capacity index; every mutating path uses a fresh
// one.
func NewService(st store.Store, client storage.Client, bucket string, logger *zap.Logger, cfg Config) *Service {
	fresh := capacity.NewIndex(st)
	cached := capacity.NewCachedIndex(st, cfg.CacheTTL())
	reconciler := sync.NewReconciler(st, logger)
	return &Service{
		store:      st,
		client:     client,
		bucket:     bucket,
		logger:     logger,
		cfg:        cfg,
		reconciler: reconciler,
		detector:   conflict.NewDetector(st, cached, logger),
		resolver:   conflict.NewResolver(st, fresh, reconciler, logger),
		engine:     layout.NewEngine(),
		index:      cached,
	}
}

// SyncGuest reconciles a single guest into seating state.
func (s *Service) SyncGuest(ctx context.Context, weddingID, guestID string) models.SyncResult {
	result := s.reconciler.SyncGuestToSeating(ctx, weddingID, guestID)
	s.index.Invalidate(weddingID)
	return result
}

// SyncAll reconciles every guest, persists the report, and exports it.
func (s *Service) SyncAll(ctx context.Context, weddingID string) (*models.SyncReport, error) {
	report, err := s.reconciler.SyncAllGuests(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	s.index.Invalidate(weddingID)
	s.export(ctx, weddingID, fmt.Sprintf(reportObjectFmt, weddingID), report)
	return report, nil
}

// ReverseSync pushes seating state back onto guest records.
func (s *Service) ReverseSync(ctx context.Context, weddingID string) (*models.ReverseSyncReport, error) {
	return s.reconciler.SyncSeatingToGuests(ctx, weddingID)
}

// Conflicts lists the wedding's guest/seating inconsistencies.
func (s *Service) Conflicts(ctx context.Context, weddingID string) ([]models.Conflict, error) {
	return s.detector.DetectConflicts(ctx, weddingID)
}

// Resolve applies a resolution strategy to one conflict.
func (s *Service) Resolve(ctx context.Context, weddingID string, c models.Conflict, resolution string) models.SyncResult {
	result := s.resolver.ResolveConflict(ctx, weddingID, c, resolution)
	s.index.Invalidate(weddingID)
	return result
}

// GenerateLayout places the wedding's tables using the given strategy,
// deriving a default table set when none exists yet. Derived tables are
// persisted; the finished layout is exported to object storage.
func (s *Service) GenerateLayout(ctx context.Context, weddingID, strategyName string, hall *models.HallSize) (*models.LayoutResult, error) {
	if strategyName == "" {
		strategyName = s.cfg.Strategy
	}
	strategy, err := layout.ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		h := s.cfg.Hall()
		hall = &h
	}

	guests, err := s.store.ListGuests(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.ListTables(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	result := s.engine.GenerateAutoLayout(guests, existing, strategy, *hall)

	// Tables derived from the guest count are new; keep them so capacity
	// lookups and later layouts see the same set.
	if len(existing) == 0 && len(result.Tables) > 0 {
		if err := s.store.CreateTables(ctx, weddingID, result.Tables); err != nil {
			return nil, err
		}
		s.index.Invalidate(weddingID)
	}

	s.logger.Info("Layout generated",
		zap.String("wedding_id", weddingID),
		zap.String("strategy", string(strategy)),
		zap.Int("tables", result.TotalTables),
		zap.Int("assigned", result.TotalAssigned),
	)
	s.export(ctx, weddingID, fmt.Sprintf(layoutObjectFmt, weddingID), result)
	return &result, nil
}

// LastReport returns the most recent sync report of the wedding.
func (s *Service) LastReport(ctx context.Context, weddingID string) (*models.SyncReport, error) {
	return s.store.GetSyncReport(ctx, weddingID)
}

// export uploads a JSON snapshot to the export bucket. Export is best
// effort: the operation that produced the snapshot has already
// succeeded, so failures are logged and swallowed.
func (s *Service) export(ctx context.Context, weddingID, object string, v any) {
	if s.client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("Failed to encode export", zap.String("object", object), zap.Error(err))
		return
	}
	_, err = s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		s.logger.Warn("Failed to export snapshot",
			zap.String("wedding_id", weddingID),
			zap.String("object", object),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("Snapshot exported", zap.String("object", object))
}
