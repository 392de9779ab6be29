package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/notion"
)

func TestPageToPost_AllFields(t *testing.T) {
	raw := `{
		"object": "page",
		"id": "page-1",
		"last_edited_time": "2024-02-03T10:00:00.000Z",
		"cover": {"type": "file", "file": {"url": "https://prod-files-secure.s3.us-west-2.amazonaws.com/c.png", "expiry_time": "2024-02-03T11:00:00.000Z"}},
		"properties": {
			"Title": {"type": "title", "title": [{"type": "text", "plain_text": "Hello "}, {"type": "text", "plain_text": "World"}]},
			"Description": {"type": "rich_text", "rich_text": [{"type": "text", "plain_text": "desc"}]},
			"Tags": {"type": "multi_select", "multi_select": [{"name": "go"}, {"name": "notion"}]},
			"Author": {"type": "people", "people": [{"object": "user", "id": "u1", "type": "person", "name": "Kim"}]},
			"Date": {"type": "date", "date": {"start": "2024-02-01"}},
			"Slug": {"type": "rich_text", "rich_text": [{"type": "text", "plain_text": "hello-world"}]},
			"Status": {"type": "select", "select": {"name": "Published"}}
		}
	}`
	var page notion.Page
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	post := PageToPost(page)

	assert.Equal(t, model.Post{
		ID:           "page-1",
		Title:        "Hello World",
		Description:  "desc",
		CoverImage:   "https://prod-files-secure.s3.us-west-2.amazonaws.com/c.png",
		Tags:         []string{"go", "notion"},
		Author:       "Kim",
		Date:         "2024-02-01",
		ModifiedDate: "2024-02-03T10:00:00.000Z",
		Slug:         "hello-world",
	}, post)
	assert.True(t, isPublished(page))
}

func TestPageToPost_IsTotal(t *testing.T) {
	tests := []struct {
		name string
		page notion.Page
	}{
		{"no properties", notion.Page{ID: "p"}},
		{"empty properties", notion.Page{ID: "p", Properties: notion.Properties{}}},
		{"mismatched types", notion.Page{ID: "p", Properties: notion.Properties{
			"Title":       &notion.RichTextProperty{RichText: rich("not a title")},
			"Description": &notion.TitleProperty{Title: rich("not rich text")},
			"Tags":        &notion.SelectProperty{Select: &notion.SelectOption{Name: "single"}},
			"Author":      &notion.DateProperty{},
			"Date":        &notion.PeopleProperty{},
			"Slug":        &notion.UnknownProperty{Declared: "formula"},
		}}},
		{"nil payloads", notion.Page{ID: "p", Properties: notion.Properties{
			"Date":   &notion.DateProperty{Date: nil},
			"Author": &notion.PeopleProperty{People: nil},
			"Tags":   &notion.MultiSelectProperty{},
			"Slug":   &notion.RichTextProperty{},
		}}},
		{"unknown cover", notion.Page{ID: "p", Cover: &notion.File{Type: "emoji"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var post model.Post
			require.NotPanics(t, func() { post = PageToPost(tt.page) })

			assert.Equal(t, model.Post{ID: "p", Slug: "p"}, post)
		})
	}
}

func TestPageToPost_BotAuthorIsEmpty(t *testing.T) {
	page := notion.Page{ID: "p", Properties: notion.Properties{
		"Author": &notion.PeopleProperty{People: []notion.User{{Type: "bot", Name: "Integration"}}},
	}}

	assert.Empty(t, PageToPost(page).Author)
}

func TestPageToPost_ExternalCover(t *testing.T) {
	page := notion.Page{ID: "p", Cover: &notion.File{Type: "external", External: &notion.ExternalFile{URL: "https://picsum.photos/1"}}}

	assert.Equal(t, "https://picsum.photos/1", PageToPost(page).CoverImage)
}

func TestIsPublished_SelectOnly(t *testing.T) {
	page := notion.Page{Properties: notion.Properties{
		"Status": &notion.SelectProperty{Select: &notion.SelectOption{Name: "Published"}},
	}}
	assert.True(t, isPublished(page))

	page.Properties["Status"] = &notion.SelectProperty{Select: &notion.SelectOption{Name: "Draft"}}
	assert.False(t, isPublished(page))

	// The query filters on a select property, so a status typed one never matches.
	page.Properties["Status"] = &notion.StatusProperty{Status: &notion.SelectOption{Name: "Published"}}
	assert.False(t, isPublished(page))
}
