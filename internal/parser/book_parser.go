package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedBook represents a book parsed from natural language
type ParsedBook struct {
	Title      string
	Author     string
	TotalPages int
	Errors     []string
}

// ParseBook extracts metadata from an add-book line using natural syntax
// Syntax: "Book title by Author Name p:320"
func ParseBook(input string) ParsedBook {
	result := ParsedBook{
		Title:  input,
		Errors: []string{},
	}

	// Extract page count (p:320 or pages:320)
	pagesRegex := regexp.MustCompile(`\b(?:p|pages):(\S+)`)
	pagesMatches := pagesRegex.FindStringSubmatch(input)
	if len(pagesMatches) > 1 {
		pages, err := strconv.Atoi(pagesMatches[1])
		if err != nil || pages < 0 {
			result.Errors = append(result.Errors, "Invalid page count '"+pagesMatches[1]+"'")
		} else {
			result.TotalPages = pages
		}
		input = pagesRegex.ReplaceAllString(input, "")
	}

	// Split "Title by Author" on the last " by " so titles containing
	// "by" still parse ("Death by Water by Kenzaburo Oe").
	if idx := strings.LastIndex(strings.ToLower(input), " by "); idx > 0 {
		author := strings.TrimSpace(input[idx+4:])
		if author != "" {
			result.Author = author
			input = input[:idx]
		}
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")

	return result
}
