package models

import (
	"time"
)

// Settings is the single-row preferences record
type Settings struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	InstallID             string  `json:"install_id"`
	DefaultPagesPerMinute float64 `gorm:"default:0" json:"default_pages_per_minute"`
	WeeklyGoalMinutes     int     `gorm:"default:150" json:"weekly_goal_minutes"`
}

// ApplyDefaults repairs a malformed settings row in place.
func (s *Settings) ApplyDefaults() {
	if s.DefaultPagesPerMinute < 0 {
		s.DefaultPagesPerMinute = 0
	}
	if s.WeeklyGoalMinutes <= 0 {
		s.WeeklyGoalMinutes = 150
	}
}
