// Package mock provides in-memory stand-ins for external dependencies in
// integration tests.
package mock

import (
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/activity-log/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps an in-memory sqlite store migrated with the application schema.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens (once per test binary) the shared in-memory record store.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbConn.AutoMigrate(&model.ActivityModel{}); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// Reset clears all rows between scenarios.
func (d *Db) Reset() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.ActivityModel{}).Error
}
