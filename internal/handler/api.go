package handler

import (
	"github.com/angali/internal/geo"
	"github.com/angali/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	visitors  *service.VisitorService
	tracking  *service.TrackingService
	content   *service.ContentService
	stats     *service.StatsService
	resolver  geo.Resolver
	log       *zap.Logger
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, resolver geo.Resolver, log *zap.Logger, uploadDir, uploadURL string) *API {
	if log == nil {
		log = zap.NewNop()
	}

	return &API{
		db:        db,
		visitors:  service.NewVisitorService(db),
		tracking:  service.NewTrackingService(db, log),
		content:   service.NewContentService(db),
		stats:     service.NewStatsService(db),
		resolver:  resolver,
		log:       log,
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
