package health

import (
	"context"

	"listsync/core/storage"
	"listsync/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs infrastructure checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new health service. db may be nil.
func NewService(client storage.Client, bucket, prefix string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		db:     db,
		logger: logger,
	}
}

// CheckStorage checks the bucket and the source prefix.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket, s.prefix)
}

// FixStorage creates what the report lists as missing.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	return checks.FixStorage(ctx, s.client, s.logger, report)
}

// CheckSchema checks the view tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckAll runs every check and collects the outcome per check.
// Failing checks are reported, not returned as errors.
func (s *Service) CheckAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if st, err := s.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = st
	}

	if sc, err := s.CheckSchema(); err != nil {
		report["schema"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = sc
	}

	return report
}
