package integrity

import (
	"context"

	"housing-manager/core/storage"
	"housing-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckGameData returns a list of missing gamedata sheets.
func (s *Service) CheckGameData(ctx context.Context) ([]string, error) {
	return checks.CheckGameData(ctx, s.client, s.bucket)
}

// CheckSchema compares the housing tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckWards reports wards that do not hold a full set of lands.
func (s *Service) CheckWards() (*checks.WardReport, error) {
	return checks.CheckWards(s.db)
}
