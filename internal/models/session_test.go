package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeReconcilesMinutes(t *testing.T) {
	start := time.Date(2025, 5, 10, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		typed   int
		elapsed time.Duration
		want    int
	}{
		{name: "wall clock raises typed", typed: 10, elapsed: 45 * time.Minute, want: 45},
		{name: "typed never reduced", typed: 45, elapsed: 10 * time.Minute, want: 45},
		{name: "equal stays", typed: 30, elapsed: 30 * time.Minute, want: 30},
		{name: "zero typed takes wall clock", typed: 0, elapsed: 90 * time.Second, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := start.Add(tt.elapsed)
			s := ReadingSession{StartedAt: start, FinishedAt: &end, Minutes: tt.typed}
			s.Normalize()
			assert.Equal(t, tt.want, s.Minutes)
		})
	}
}

func TestNormalizeClampsEndBeforeStart(t *testing.T) {
	start := time.Date(2025, 5, 10, 21, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	s := ReadingSession{StartedAt: start, FinishedAt: &end, Minutes: 15}
	s.Normalize()

	require.NotNil(t, s.FinishedAt)
	assert.Equal(t, start, *s.FinishedAt)
	assert.Equal(t, 15, s.Minutes)
}

func TestNormalizeZeroesNegatives(t *testing.T) {
	start := time.Date(2025, 5, 10, 21, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)

	s := ReadingSession{StartedAt: start, FinishedAt: &end, Minutes: -5, Pages: -12}
	s.Normalize()

	assert.Equal(t, 1, s.Minutes)
	assert.Equal(t, 0, s.Pages)
}

func TestNormalizeLeavesActiveSessionAlone(t *testing.T) {
	s := ReadingSession{StartedAt: time.Now(), Minutes: 7}
	s.Normalize()

	assert.True(t, s.Active())
	assert.Equal(t, 7, s.Minutes)
}

func TestBookProgressAndClamp(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		current      int
		wantPage     int
		wantProgress float64
		wantFinished bool
	}{
		{name: "halfway", total: 200, current: 100, wantPage: 100, wantProgress: 0.5},
		{name: "overshoot clamps to total", total: 200, current: 300, wantPage: 200, wantProgress: 1, wantFinished: true},
		{name: "negative clamps to zero", total: 200, current: -5, wantPage: 0},
		{name: "no page count", total: 0, current: 50, wantPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Book{TotalPages: tt.total, CurrentPage: tt.current}
			b.ClampPages()
			assert.Equal(t, tt.wantPage, b.CurrentPage)
			assert.Equal(t, tt.wantProgress, b.Progress())
			assert.Equal(t, tt.wantFinished, b.Finished())
		})
	}
}

func TestMoodProfileLookup(t *testing.T) {
	p := MoodCalm.Profile()
	assert.Equal(t, 0.35, p.Energy)
	assert.Equal(t, 0.80, p.Valence)

	// Unknown variants resolve to the neutral profile.
	unknown := MoodKind("wistful").Profile()
	assert.Equal(t, MoodNeutral.Profile(), unknown)

	for _, k := range AllMoodKinds {
		assert.True(t, k.Valid(), "kind %s", k)
	}
	assert.False(t, MoodKind("wistful").Valid())
}
