package config

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"analytics_backend/internal/models"
)

// Logical database names.
const (
	MainDB      = "main"
	AnalyticsDB = "analytics"
)

// ErrUnknownDatabase reports a lookup for a logical database that was never
// configured. Distinct from query errors: nothing was even connected.
var ErrUnknownDatabase = errors.New("database not configured")

// Registry holds one GORM handle per configured logical database. Built once
// at startup and passed by reference to whatever needs store access; there is
// no package-level DB global.
type Registry struct {
	dbs map[string]*gorm.DB
}

// NewRegistry opens a pooled connection for every configured DSN and migrates
// the record schema on each.
func NewRegistry(cfg Config) (*Registry, error) {
	registry := &Registry{dbs: make(map[string]*gorm.DB)}
	for name, dsn := range cfg.Databases {
		db, err := openDatabase(dsn)
		if err != nil {
			return nil, fmt.Errorf("open database %q: %w", name, err)
		}
		registry.dbs[name] = db
	}
	return registry, nil
}

// Get returns the handle registered under a logical name.
func (r *Registry) Get(name string) (*gorm.DB, error) {
	db, ok := r.dbs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDatabase, name)
	}
	return db, nil
}

func openDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// created_at must always be written as UTC; display conversion
		// happens at the API boundary.
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.DrivingDistance{}); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	return db, nil
}
