package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wordstash/wordstash/internal/entities"
)

const snapshotKey = "snapshot"

// blobRow is the single key/value row holding the serialized snapshot.
type blobRow struct {
	Key       string `gorm:"primaryKey;size:50"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (blobRow) TableName() string {
	return "snapshots"
}

// SQLiteAdapter stores the snapshot blob in a SQLite database. It keeps the
// same load/save contract as the file adapter; the database is purely a
// transport for the opaque blob.
type SQLiteAdapter struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewSQLiteAdapter(dbPath string, log zerolog.Logger) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&blobRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteAdapter{db: db, log: log}, nil
}

func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (a *SQLiteAdapter) Load() entities.Snapshot {
	var row blobRow
	err := a.db.Where("key = ?", snapshotKey).First(&row).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			a.log.Warn().Err(err).Msg("failed to read snapshot, starting fresh")
		}
		return EmptySnapshot()
	}

	var snapshot entities.Snapshot
	if err := json.Unmarshal([]byte(row.Value), &snapshot); err != nil {
		a.log.Warn().Err(err).Msg("corrupt snapshot, starting fresh")
		return EmptySnapshot()
	}
	return normalize(snapshot)
}

func (a *SQLiteAdapter) Save(snapshot entities.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	var row blobRow
	result := a.db.Where("key = ?", snapshotKey).First(&row)

	if result.Error == gorm.ErrRecordNotFound {
		row = blobRow{Key: snapshotKey, Value: string(data)}
		return a.db.Create(&row).Error
	} else if result.Error != nil {
		return result.Error
	}

	row.Value = string(data)
	return a.db.Save(&row).Error
}
