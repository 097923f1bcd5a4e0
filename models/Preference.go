package models

import "time"

// Preference stores a single persisted key/value setting.
type Preference struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time
}
