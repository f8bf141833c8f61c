package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaflog/internal/models"
)

func TestWriteSessionsCSV(t *testing.T) {
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	bookID := uint(3)
	goneID := uint(99)

	books := []models.Book{
		{ID: bookID, Title: "Crime, and Punishment"},
	}
	sessions := []models.ReadingSession{
		{ID: 1, BookID: &bookID, StartedAt: start, FinishedAt: &end, Minutes: 30, Pages: 20},
		{ID: 2, BookID: nil, StartedAt: start, FinishedAt: &end, Minutes: 15, Pages: 5},
		{ID: 3, BookID: &goneID, StartedAt: start, FinishedAt: &end, Minutes: -4, Pages: -1},
	}

	var buf strings.Builder
	require.NoError(t, WriteSessionsCSV(&buf, sessions, books))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "id,bookId,bookTitle,startISO8601,endISO8601,minutes,pages", lines[0])

	// Commas in titles are replaced so a plain split keeps the layout.
	row := strings.Split(lines[1], ",")
	require.Len(t, row, 7)
	assert.Equal(t, "3", row[1])
	assert.Equal(t, "Crime  and Punishment", row[2])
	assert.Equal(t, "2025-06-01T20:00:00Z", row[3])
	assert.Equal(t, "2025-06-01T20:30:00Z", row[4])
	assert.Equal(t, "30", row[5])
	assert.Equal(t, "20", row[6])

	// No book resolves to an empty id and "Unassigned".
	row = strings.Split(lines[2], ",")
	assert.Equal(t, "", row[1])
	assert.Equal(t, "Unassigned", row[2])

	// Dangling reference keeps the id but falls back to "Unassigned";
	// corrupt counters are clamped.
	row = strings.Split(lines[3], ",")
	assert.Equal(t, "99", row[1])
	assert.Equal(t, "Unassigned", row[2])
	assert.Equal(t, "0", row[5])
	assert.Equal(t, "0", row[6])
}

func TestWriteSessionsCSVEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteSessionsCSV(&buf, nil, nil))
	assert.Equal(t, "id,bookId,bookTitle,startISO8601,endISO8601,minutes,pages\n", buf.String())
}

func TestWriteSessionsCSVActiveSessionEndsAtStart(t *testing.T) {
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	sessions := []models.ReadingSession{
		{ID: 7, StartedAt: start}, // live timer row, no end yet
	}

	var buf strings.Builder
	require.NoError(t, WriteSessionsCSV(&buf, sessions, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	row := strings.Split(lines[1], ",")
	assert.Equal(t, row[3], row[4])
}

func TestWriteJSONShape(t *testing.T) {
	var buf strings.Builder
	snap := Snapshot{
		Books:    []models.Book{{ID: 1, Title: "Dune"}},
		Settings: &models.Settings{InstallID: "abc"},
	}
	require.NoError(t, WriteJSON(&buf, snap))

	out := buf.String()
	assert.Contains(t, out, `"books"`)
	assert.Contains(t, out, `"sessions"`)
	assert.Contains(t, out, `"moods"`)
	assert.Contains(t, out, `"achievements"`)
	assert.Contains(t, out, `"install_id": "abc"`)
}
