package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `{
	"object": "page",
	"id": "8a7c1d6e-1111-2222-3333-444455556666",
	"last_edited_time": "2024-02-03T10:00:00.000Z",
	"cover": {"type": "external", "external": {"url": "https://images.unsplash.com/cover.jpg"}},
	"properties": {
		"Title": {"id": "title", "type": "title", "title": [{"type": "text", "plain_text": "Hello"}]},
		"Tags": {"id": "t", "type": "multi_select", "multi_select": [{"id": "1", "name": "go"}, {"id": "2", "name": "notion"}]},
		"Status": {"id": "s", "type": "select", "select": {"id": "p", "name": "Published"}},
		"Date": {"id": "d", "type": "date", "date": {"start": "2024-02-01", "end": null}},
		"Author": {"id": "a", "type": "people", "people": [{"object": "user", "id": "u", "type": "person", "name": "Kim"}]},
		"Broken": {"id": "b", "type": "title", "title": "not an array"},
		"Formula": {"id": "f", "type": "formula", "formula": {"type": "string", "string": "x"}}
	}
}`

func TestPage_DecodesTypedProperties(t *testing.T) {
	var page Page
	require.NoError(t, json.Unmarshal([]byte(samplePage), &page))

	assert.True(t, page.HasProperties())
	assert.Equal(t, "https://images.unsplash.com/cover.jpg", page.Cover.URL())

	title, ok := page.Properties["Title"].(*TitleProperty)
	require.True(t, ok)
	assert.Equal(t, "Hello", PlainText(title.Title))

	tags, ok := page.Properties["Tags"].(*MultiSelectProperty)
	require.True(t, ok)
	assert.Len(t, tags.MultiSelect, 2)

	date, ok := page.Properties["Date"].(*DateProperty)
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", date.Date.Start)

	people, ok := page.Properties["Author"].(*PeopleProperty)
	require.True(t, ok)
	assert.False(t, people.People[0].IsBot())
}

func TestPage_MismatchedPayloadBecomesUnknown(t *testing.T) {
	var page Page
	require.NoError(t, json.Unmarshal([]byte(samplePage), &page))

	broken, ok := page.Properties["Broken"].(*UnknownProperty)
	require.True(t, ok)
	assert.Equal(t, "title", broken.Type())

	formula, ok := page.Properties["Formula"].(*UnknownProperty)
	require.True(t, ok)
	assert.Equal(t, "formula", formula.Type())
}

func TestPage_PartialObjectHasNoProperties(t *testing.T) {
	var page Page
	require.NoError(t, json.Unmarshal([]byte(`{"object":"page","id":"abc"}`), &page))
	assert.False(t, page.HasProperties())

	require.NoError(t, json.Unmarshal([]byte(`{"object":"page","id":"abc","properties":null}`), &page))
	assert.False(t, page.HasProperties())
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name string
		file *File
		want string
	}{
		{"nil", nil, ""},
		{"external", &File{Type: "external", External: &ExternalFile{URL: "https://a"}}, "https://a"},
		{"hosted", &File{Type: "file", File: &HostedFile{URL: "https://s3/b"}}, "https://s3/b"},
		{"type without payload", &File{Type: "file"}, ""},
		{"unknown", &File{Type: "emoji"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.file.URL())
		})
	}
}
