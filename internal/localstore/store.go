// Package localstore is the durable local storage collaborator: a small
// sqlite database holding named JSON blobs. Two records live here — the
// authenticated user id and the catalog cache — each written and read
// independently.
package localstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Well-known blob keys.
const (
	KeySession = "session"
	KeyCatalog = "catalog"
)

type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite file at path, creating parent directories as
// needed. Schema is created via AutoMigrate by default; MIGRATIONS=1 runs
// the SQL migrations under ./migrations instead.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return open(path)
}

// OpenDSN connects with a raw sqlite DSN (used by tests for in-memory DBs).
func OpenDSN(dsn string) (*Store, error) { return open(dsn) }

func open(dsn string) (*Store, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, err
	}
	if useSQLMigrations() {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, err
		}
	} else {
		if err := db.AutoMigrate(&Blob{}); err != nil {
			return nil, err
		}
	}
	return &Store{db: db}, nil
}

// Get returns the raw value for key and whether it exists.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var b Blob
	err := s.db.First(&b, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b.Value, true, nil
}

// Put writes the value for key, replacing any previous record.
func (s *Store) Put(key string, value []byte) error {
	b := Blob{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Save(&b).Error
}

// Delete removes the record for key; absent keys are not an error.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Blob{}, "key = ?", key).Error
}

// GetJSON unmarshals the value for key into v. The bool reports presence;
// a stored shape that no longer decodes is surfaced as an error.
func (s *Store) GetJSON(key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, err
	}
	return true, nil
}

// PutJSON marshals v and stores it under key.
func (s *Store) PutJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(key, raw)
}
