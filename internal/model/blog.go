package model

import (
	"time"
)

// Post is a published blog entry. Optional fields are empty strings when the
// source page does not carry them; Slug is never empty.
type Post struct {
	ID           string
	Title        string
	Description  string
	CoverImage   string
	Tags         []string
	Author       string
	Date         string
	ModifiedDate string
	Slug         string
}

// PublishedAt parses Date, returning the zero time when it is unset or not a
// recognised date.
func (p Post) PublishedAt() time.Time {
	return parseDate(p.Date)
}

// ModifiedAt parses ModifiedDate the same way as PublishedAt.
func (p Post) ModifiedAt() time.Time {
	return parseDate(p.ModifiedDate)
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}

// PostDetail is everything the detail page renders.
type PostDetail struct {
	Post     Post
	Markdown string
	HTML     string
	ReadTime int
}

type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder maps the sort query parameter; anything unknown is latest.
func ParseSortOrder(value string) SortOrder {
	if SortOrder(value) == SortOldest {
		return SortOldest
	}
	return SortLatest
}
