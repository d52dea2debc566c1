package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"housing-manager/core/loader"
	"housing-manager/core/logger"
	"housing-manager/core/middleware/auth"
	"housing-manager/core/middleware/rayid"
	"housing-manager/core/storage"
	"housing-manager/feature/housing"
	"housing-manager/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "housing-manager/docs/swagger"
)

// @title Housing Manager API
// @version 1.0
// @description API for managing player housing: wards, estates and placed items.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the housing manager server",
	Long: `Loads every ward and estate, then starts the HTTP server and the price decay loop.

Wallets and bags come from the in-process character registry, which starts
empty. Until a character service is wired in, only zero-price plots can be
bought and there are no carried items to place.`,
	Run: func(cmd *cobra.Command, args []string) {
		e, err := loadEnv()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		db, housingStore, err := e.connect(ctx)
		if err != nil {
			logg.Fatal("Failed to open housing database", zap.Error(err))
		}

		client, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// An incomplete ward is fatal; see `integrity wards`.
		mgr, err := e.boot(ctx, housingStore, client)
		if err != nil {
			logg.Fatal("Failed to boot housing", zap.Error(err))
		}
		svc := housing.NewService(mgr)
		go svc.RunDecay(ctx, e.cfg.Housing.DecayInterval())

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		features := loader.NewManager()
		features.Register(housing.NewFeature(svc, logg))
		features.Register(integrity.NewFeature(client, e.cfg.Storage.Bucket, logg, db))

		// RayID must be first to trace everything
		app.Use(rayid.New())

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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		if err := features.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port), zap.Int("wards", len(svc.Wards())))
			if err := app.Listen(":" + e.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
