package database

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nenexus/nexus-backend/internal/models"
)

// Connect opens the SQLite file at path and migrates the schema. The handle
// is returned to the caller and threaded through services explicitly; no
// package-level connection is kept.
func Connect(path string) (*gorm.DB, error) {
	if !strings.Contains(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// SQLite serializes writes at the file level; a single connection keeps
	// the driver from returning SQLITE_BUSY under concurrent transactions.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	logrus.WithField("path", path).Info("database connection established")

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		return nil, err
	}
	return db, nil
}
