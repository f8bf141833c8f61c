package export

import (
	"encoding/json"
	"io"

	"leaflog/internal/models"
)

// Snapshot is the five independently-keyed collections of the persisted
// state, serialized with stable field names and ISO-8601 timestamps.
type Snapshot struct {
	Books        []models.Book           `json:"books"`
	Sessions     []models.ReadingSession `json:"sessions"`
	Moods        []models.MoodEntry      `json:"moods"`
	Achievements []models.Achievement    `json:"achievements"`
	Settings     *models.Settings        `json:"settings"`
}

// WriteJSON emits the snapshot as indented JSON.
func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
