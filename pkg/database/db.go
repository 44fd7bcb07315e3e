package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens the embedded SQLite store at path, creating the file if
// it does not exist. Schema migration is the caller's responsibility so that
// tests can open throwaway databases without side effects.
func NewConnection(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serializes writes itself; a small pool is enough.
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}
