package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/paylinkbr/paylink-core/pkg/config"
	"github.com/paylinkbr/paylink-core/pkg/logger"
)

type kvRecord struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value"`
}

func (kvRecord) TableName() string {
	return "device_store"
}

// SQLiteStore persists the device state in a local SQLite file through GORM.
type SQLiteStore struct {
	conn *gorm.DB
}

// NewSQLite opens (and if needed creates) the device store file.
func NewSQLite(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*SQLiteStore, error) {
	if cfg.SQLitePath == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening device store: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrating device store: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "device store opened")
	}

	return &SQLiteStore{conn: conn}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var rec kvRecord
	err := s.conn.WithContext(ctx).First(&rec, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return rec.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	rec := kvRecord{Key: key, Value: value}
	return s.conn.WithContext(ctx).Save(&rec).Error
}

func (s *SQLiteStore) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.conn.WithContext(ctx).Delete(&kvRecord{}, "key IN ?", keys).Error
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
