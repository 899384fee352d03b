package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/runwayhq/runway-backend/internal/logger"
)

// SQLiteService backs local development and the test suites. Schema comes
// from the same AllModels list as postgres so the two never drift.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(log *logger.Logger, path string) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   NewGormLogger(serviceLog),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	return &SQLiteService{db: gormDB, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
	return s.db.AutoMigrate(AllModels()...)
}

func (s *SQLiteService) DB() *gorm.DB {
	return s.db
}
