package views

import (
	"listsync/core/reconcile"
	"listsync/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new views feature. Without a database it stays disabled.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, cfg reconcile.Config, logger *zap.Logger) *Feature {
	f := &Feature{enabled: db != nil}
	if db != nil {
		f.service = NewService(NewRepository(db), client, bucket, cfg, logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "views"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the view service, nil when disabled.
func (f *Feature) Service() *Service {
	return f.service
}
