package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is the persisted unlock state for one catalog entry.
// The full set is seeded locked from the catalog on first run; after that
// the only mutations are the engine flipping IsUnlocked (monotonic) and an
// explicit reset back to the seed.
type Achievement struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Code        string     `gorm:"uniqueIndex;not null" json:"code"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Points      int        `gorm:"default:0" json:"points"`
	IsUnlocked  bool       `gorm:"default:false" json:"is_unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
}
