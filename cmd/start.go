package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"wedding-planner/core/config"
	"wedding-planner/core/database"
	"wedding-planner/core/loader"
	"wedding-planner/core/logger"
	"wedding-planner/core/middleware/auth"
	"wedding-planner/core/middleware/rayid"
	"wedding-planner/core/storage"
	"wedding-planner/feature/seating"
	seatingstore "wedding-planner/feature/seating/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "wedding-planner/docs/swagger"
)

// @title Wedding Planner API
// @version 1.0
// @description API for guest-seating reconciliation and table layouts.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the wedding planner server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Seating.IsValidStrategy() {
			logg.Fatal("Invalid default layout strategy", zap.String("strategy", cfg.Seating.Strategy))
		}

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		st := seatingstore.NewGorm(db)
		if err := st.Migrate(); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage (Optional)
		// Exports degrade gracefully when the object store is unreachable.
		var client storage.Client
		if c, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			client = c
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(seating.NewFeature(st, client, cfg.Storage.Bucket, logg, cfg.Seating))

		// Middleware Registration
		// RayID must be first so every request is traceable.
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
