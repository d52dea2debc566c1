package cmd

import (
	"context"
	"fmt"

	"housing-manager/core/config"
	"housing-manager/core/database"
	"housing-manager/core/logger"
	"housing-manager/core/storage"
	"housing-manager/feature/character"
	"housing-manager/feature/gamedata"
	"housing-manager/feature/housing"
	"housing-manager/feature/housing/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env is what every command needs before it does anything useful.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg = logg.With(zap.String("world", cfg.Server.Name), zap.Int("world_id", cfg.Server.WorldID))
	return &env{cfg: cfg, logger: logg}, nil
}

// connect opens the housing database and brings its tables up to date.
func (e *env) connect(ctx context.Context) (*gorm.DB, *store.GormStore, error) {
	db, err := database.Connect(e.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection required: %w", err)
	}
	s := store.New(db)
	if err := s.Migrate(ctx); err != nil {
		return nil, nil, err
	}
	e.logger.Info("Connected to housing database", zap.String("driver", e.cfg.Database.Driver))
	return db, s, nil
}

// boot loads every ward, house and container into a housing manager.
func (e *env) boot(ctx context.Context, s store.Store, client storage.Client) (*housing.Manager, error) {
	chars := character.NewRegistry()
	mgr := housing.NewManager(e.cfg.Housing, uint16(e.cfg.Server.WorldID), housing.Deps{
		Store:   s,
		Catalog: gamedata.NewSource(client, e.cfg.Storage.Bucket, e.cfg.Housing.GamedataTTL(), e.logger),
		Bags:    chars,
		Wallet:  chars,
		Logger:  e.logger,
	})
	if err := mgr.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to load housing state: %w", err)
	}
	return mgr, nil
}
