package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/theme"
	"storefront/models"
)

func withPreferenceDatabase(t *testing.T, name string) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := AutoMigrate(database); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return database
}

func TestPreferenceStorageMissingKey(t *testing.T) {
	t.Parallel()

	storage := NewPreferenceStorage(withPreferenceDatabase(t, "pref-missing"))
	if _, err := storage.Get(context.Background(), theme.StorageKey); !errors.Is(err, theme.ErrNotFound) {
		t.Fatalf("expected theme.ErrNotFound, got %v", err)
	}
}

func TestPreferenceStorageUpserts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := withPreferenceDatabase(t, "pref-upsert")
	storage := NewPreferenceStorage(database)

	if err := storage.Set(ctx, theme.StorageKey, "theme2"); err != nil {
		t.Fatalf("first Set() error = %v", err)
	}
	if err := storage.Set(ctx, theme.StorageKey, "theme3"); err != nil {
		t.Fatalf("second Set() error = %v", err)
	}

	value, err := storage.Get(ctx, theme.StorageKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "theme3" {
		t.Fatalf("Get() = %q, want theme3", value)
	}

	var count int64
	if err := database.Model(&models.Preference{}).Count(&count).Error; err != nil {
		t.Fatalf("count preferences: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single preference row, got %d", count)
	}
}

func TestThemeStoreRoundTripThroughDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := NewPreferenceStorage(withPreferenceDatabase(t, "pref-roundtrip"))

	theme.Open(ctx, storage).Set(ctx, models.ThemeDarkPro)
	if got := theme.Open(ctx, storage).Get(); got != models.ThemeDarkPro {
		t.Fatalf("reloaded theme = %q, want %q", got, models.ThemeDarkPro)
	}
}

func TestPreferenceStorageWithoutDatabase(t *testing.T) {
	t.Parallel()

	storage := NewPreferenceStorage(nil)
	if err := storage.Set(context.Background(), "k", "v"); !errors.Is(err, gorm.ErrInvalidDB) {
		t.Fatalf("expected gorm.ErrInvalidDB, got %v", err)
	}
	if got := theme.Open(context.Background(), storage).Get(); got != models.DefaultTheme {
		t.Fatalf("expected default theme when storage fails, got %q", got)
	}
}
