package cmd

import (
	"log/slog"
	"os"

	"gorm.io/gorm"

	verdanthttp "verdant/internal/adapters/in/http"
	"verdant/internal/adapters/out/postgres"
	"verdant/internal/core/application/archive"
	"verdant/internal/core/application/store"
	"verdant/internal/jobs"
)

// CompositionRoot wires the application: the seeded state store, the HTTP
// adapter, and (when a database is configured) the order archive. gormDB
// may be nil, in which case archival is disabled and the app runs fully
// in-memory.
type CompositionRoot struct {
	config Config
	store  *store.Store
	gormDB *gorm.DB
	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config: config,
		store:  store.NewSeeded(),
		gormDB: gormDB,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// Store returns the application state store.
func (c *CompositionRoot) Store() *store.Store {
	return c.store
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// CreateHTTPServer builds the storefront HTTP server over the store.
func (c *CompositionRoot) CreateHTTPServer() *verdanthttp.Server {
	return verdanthttp.NewServer(c.store)
}

// CreateArchiveRecorder builds the order archive recorder, or nil when no
// database is configured.
func (c *CompositionRoot) CreateArchiveRecorder() *archive.Recorder {
	if c.gormDB == nil {
		return nil
	}
	factory := postgres.NewGormUnitOfWorkFactory(c.gormDB)
	return archive.NewRecorder(c.store, factory, c.logger)
}

// CreateJobManager builds the background job manager. The archive flush
// job is included only when a recorder exists.
func (c *CompositionRoot) CreateJobManager(recorder *archive.Recorder) *jobs.JobManager {
	return jobs.NewJobManager(c.store, recorder, c.logger)
}
