// Package achievements contains the static achievement catalog and the
// rule engine that derives unlock state from the reading history.
package achievements

import "leaflog/internal/models"

// PredicateKind categorizes how a catalog entry's threshold is checked.
type PredicateKind int

const (
	TotalSessionsAtLeast PredicateKind = iota
	TotalMinutesAtLeast
	TotalPagesAtLeast
	StreakAtLeast
	DistinctMoodsAtLeast
	BooksFinishedAtLeast
)

// Definition is one catalog entry. The catalog is the single source of
// truth for unlock thresholds and display metadata.
type Definition struct {
	Code        string
	Title       string
	Description string
	Icon        string
	Points      int
	Kind        PredicateKind
	Threshold   int
}

// catalog is fixed and ordered; persisted achievement sets are seeded and
// listed in this order.
var catalog = []Definition{
	{Code: "first_session", Title: "First Chapter", Description: "Log your first reading session", Icon: "📖", Points: 10, Kind: TotalSessionsAtLeast, Threshold: 1},
	{Code: "sessions_10", Title: "Regular Reader", Description: "Log 10 reading sessions", Icon: "📚", Points: 20, Kind: TotalSessionsAtLeast, Threshold: 10},
	{Code: "sessions_50", Title: "Devoted Reader", Description: "Log 50 reading sessions", Icon: "🏛️", Points: 40, Kind: TotalSessionsAtLeast, Threshold: 50},
	{Code: "sessions_100", Title: "Centurion", Description: "Log 100 reading sessions", Icon: "💯", Points: 60, Kind: TotalSessionsAtLeast, Threshold: 100},
	{Code: "minutes_60", Title: "First Hour", Description: "Read for a total of one hour", Icon: "⏱️", Points: 10, Kind: TotalMinutesAtLeast, Threshold: 60},
	{Code: "minutes_600", Title: "Ten Hours In", Description: "Read for a total of ten hours", Icon: "🕰️", Points: 30, Kind: TotalMinutesAtLeast, Threshold: 600},
	{Code: "minutes_3000", Title: "Fifty Hours", Description: "Read for a total of fifty hours", Icon: "⏳", Points: 60, Kind: TotalMinutesAtLeast, Threshold: 3000},
	{Code: "pages_100", Title: "Page Hundred", Description: "Read 100 pages in total", Icon: "📄", Points: 15, Kind: TotalPagesAtLeast, Threshold: 100},
	{Code: "pages_1000", Title: "Thousand Pages", Description: "Read 1000 pages in total", Icon: "🗞️", Points: 45, Kind: TotalPagesAtLeast, Threshold: 1000},
	{Code: "streak_3", Title: "Warming Up", Description: "Read on 3 consecutive days", Icon: "🔥", Points: 15, Kind: StreakAtLeast, Threshold: 3},
	{Code: "streak_7", Title: "Week of Words", Description: "Read on 7 consecutive days", Icon: "📅", Points: 30, Kind: StreakAtLeast, Threshold: 7},
	{Code: "streak_30", Title: "Habit Formed", Description: "Read on 30 consecutive days", Icon: "🌟", Points: 80, Kind: StreakAtLeast, Threshold: 30},
	{Code: "moods_3", Title: "Mood Explorer", Description: "Log 3 different moods", Icon: "🎭", Points: 10, Kind: DistinctMoodsAtLeast, Threshold: 3},
	{Code: "moods_5", Title: "Full Spectrum", Description: "Log every mood at least once", Icon: "🌈", Points: 25, Kind: DistinctMoodsAtLeast, Threshold: 5},
	{Code: "first_finish", Title: "The End", Description: "Finish your first book", Icon: "🏁", Points: 20, Kind: BooksFinishedAtLeast, Threshold: 1},
	{Code: "finish_5", Title: "Shelf Conqueror", Description: "Finish 5 books", Icon: "🏆", Points: 50, Kind: BooksFinishedAtLeast, Threshold: 5},
	{Code: "finish_10", Title: "Librarian's Pride", Description: "Finish 10 books", Icon: "👑", Points: 90, Kind: BooksFinishedAtLeast, Threshold: 10},
}

// Catalog returns the ordered catalog definitions.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Seed returns one locked achievement record per catalog entry, in
// catalog order. This is the initial persisted state and the reset target.
func Seed() []models.Achievement {
	out := make([]models.Achievement, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, models.Achievement{
			Code:        def.Code,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Points:      def.Points,
			IsUnlocked:  false,
		})
	}
	return out
}
