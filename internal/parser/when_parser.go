package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseWhen parses the day a backdated session or mood happened on.
// Supported formats:
// - "today", "yesterday"
// - dd/mm/yyyy (e.g., "15/12/2024")
// - "X days ago" (e.g., "3 days ago", "1 day ago")
// The result is anchored to the given reference time's local day.
func ParseWhen(input string, now time.Time) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.ToLower(strings.TrimSpace(input))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return &today, nil
	case "yesterday":
		d := today.AddDate(0, 0, -1)
		return &d, nil
	}

	if when, err := parseDateFormat(input); err == nil {
		return when, nil
	}
	if when, err := parseDaysAgo(input, today); err == nil {
		return when, nil
	}

	return nil, fmt.Errorf("invalid date. Use: today, yesterday, dd/mm/yyyy, or X days ago")
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string) (*time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}

	when := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check the date is real (handles leap years, etc.)
	if when.Day() != day || when.Month() != time.Month(month) || when.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &when, nil
}

// parseDaysAgo parses "X days ago" relative to the reference day.
func parseDaysAgo(input string, today time.Time) (*time.Time, error) {
	agoRegex := regexp.MustCompile(`^(\d+)\s+(day|days)\s+ago$`)
	matches := agoRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative day format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}
	if amount < 1 || amount > 365 {
		return nil, fmt.Errorf("days must be between 1 and 365")
	}

	when := today.AddDate(0, 0, -amount)
	return &when, nil
}
