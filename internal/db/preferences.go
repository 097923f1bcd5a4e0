package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/theme"
	"storefront/models"
)

// PreferenceStorage persists theme preferences as rows of the preferences table.
type PreferenceStorage struct {
	db *gorm.DB
}

// NewPreferenceStorage wraps a migrated database handle.
func NewPreferenceStorage(db *gorm.DB) *PreferenceStorage {
	return &PreferenceStorage{db: db}
}

// Get returns the stored value, or theme.ErrNotFound when no row exists.
func (s *PreferenceStorage) Get(ctx context.Context, key string) (string, error) {
	if s.db == nil {
		return "", gorm.ErrInvalidDB
	}
	var pref models.Preference
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", theme.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load preference %q: %w", key, err)
	}
	return pref.Value, nil
}

// Set upserts the value for key.
func (s *PreferenceStorage) Set(ctx context.Context, key, value string) error {
	if s.db == nil {
		return gorm.ErrInvalidDB
	}
	pref := models.Preference{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}
