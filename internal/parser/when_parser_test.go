package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhen(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	tests := []struct {
		input   string
		want    *time.Time
		wantErr bool
	}{
		{input: "", want: nil},
		{input: "today", want: timePtr(day(2025, 6, 15))},
		{input: "Yesterday", want: timePtr(day(2025, 6, 14))},
		{input: "15/12/2024", want: timePtr(day(2024, 12, 15))},
		{input: "1/1/2025", want: timePtr(day(2025, 1, 1))},
		{input: "3 days ago", want: timePtr(day(2025, 6, 12))},
		{input: "1 day ago", want: timePtr(day(2025, 6, 14))},
		{input: "31/2/2025", wantErr: true},  // February 31st
		{input: "15/13/2024", wantErr: true}, // month 13
		{input: "15/12/1999", wantErr: true}, // before 2000
		{input: "0 days ago", wantErr: true},
		{input: "400 days ago", wantErr: true},
		{input: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWhen(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestParseBook(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTitle  string
		wantAuthor string
		wantPages  int
		wantErrs   int
	}{
		{
			name:       "full syntax",
			input:      "Dune by Frank Herbert p:412",
			wantTitle:  "Dune",
			wantAuthor: "Frank Herbert",
			wantPages:  412,
		},
		{
			name:      "title only",
			input:     "The Hobbit",
			wantTitle: "The Hobbit",
		},
		{
			name:       "last by wins",
			input:      "Death by Water by Kenzaburo Oe",
			wantTitle:  "Death by Water",
			wantAuthor: "Kenzaburo Oe",
		},
		{
			name:      "pages keyword",
			input:     "Sapiens pages:498",
			wantTitle: "Sapiens",
			wantPages: 498,
		},
		{
			name:      "invalid page count",
			input:     "Dune p:lots",
			wantTitle: "Dune",
			wantErrs:  1,
		},
		{
			name:      "extra whitespace collapsed",
			input:     "  The   Left Hand   of Darkness  ",
			wantTitle: "The Left Hand of Darkness",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBook(tt.input)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantAuthor, got.Author)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Len(t, got.Errors, tt.wantErrs)
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
