package models

import (
	"time"

	"gorm.io/gorm"
)

// MoodKind is the closed set of moods a reader can log
type MoodKind string

const (
	MoodCalm    MoodKind = "calm"
	MoodFocused MoodKind = "focused"
	MoodSleepy  MoodKind = "sleepy"
	MoodExcited MoodKind = "excited"
	MoodNeutral MoodKind = "neutral"
)

// AllMoodKinds lists every mood kind in display order
var AllMoodKinds = []MoodKind{MoodCalm, MoodFocused, MoodSleepy, MoodExcited, MoodNeutral}

// Valid reports whether k is one of the five known kinds.
func (k MoodKind) Valid() bool {
	switch k {
	case MoodCalm, MoodFocused, MoodSleepy, MoodExcited, MoodNeutral:
		return true
	}
	return false
}

// MoodProfile is the fixed taxonomy attached to a mood kind: energy and
// valence in [0,1] plus suggestion tags. Pure lookup data, never persisted.
type MoodProfile struct {
	Energy  float64
	Valence float64
	Tags    []string
}

var moodProfiles = map[MoodKind]MoodProfile{
	MoodCalm:    {Energy: 0.35, Valence: 0.80, Tags: []string{"unwind", "evening"}},
	MoodFocused: {Energy: 0.55, Valence: 0.75, Tags: []string{"deep-read", "study"}},
	MoodSleepy:  {Energy: 0.15, Valence: 0.45, Tags: []string{"bedtime"}},
	MoodExcited: {Energy: 0.85, Valence: 0.95, Tags: []string{"page-turner"}},
	MoodNeutral: {Energy: 0.50, Valence: 0.60, Tags: []string{}},
}

// Profile returns the taxonomy profile for the kind. Unknown kinds fall
// back to the neutral profile so stale data can't break aggregation.
func (k MoodKind) Profile() MoodProfile {
	if p, ok := moodProfiles[k]; ok {
		return p
	}
	return moodProfiles[MoodNeutral]
}

// MoodEntry is one logged mood. Entries are append-only: created after a
// reading activity or standalone, never edited, only cleared wholesale.
type MoodEntry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Date time.Time `gorm:"not null" json:"date"`
	Kind MoodKind  `gorm:"not null;default:neutral" json:"kind"`
	Note string    `json:"note"`
}
