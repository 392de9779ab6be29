package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/notion"
)

// --- Mock Notion API ---

type mockNotion struct {
	mock.Mock
}

func (m *mockNotion) QueryDatabase(ctx context.Context, databaseID string, query notion.QueryRequest) ([]notion.Page, error) {
	args := m.Called(databaseID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notion.Page), args.Error(1)
}

func (m *mockNotion) RetrievePage(ctx context.Context, pageID string) (*notion.Page, error) {
	args := m.Called(pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notion.Page), args.Error(1)
}

// --- Fixtures ---

const (
	testDatabaseID = "11111111-2222-3333-4444-555555555555"
	testPageID     = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
)

func rich(s string) []notion.RichText {
	return []notion.RichText{{Type: "text", PlainText: s}}
}

func publishedPage(id, title, slug string, tags ...string) notion.Page {
	options := make([]notion.SelectOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, notion.SelectOption{Name: tag})
	}
	return notion.Page{
		Object: "page",
		ID:     id,
		Parent: notion.Parent{Type: "database_id", DatabaseID: testDatabaseID},
		Properties: notion.Properties{
			"Title":  &notion.TitleProperty{Title: rich(title)},
			"Slug":   &notion.RichTextProperty{RichText: rich(slug)},
			"Tags":   &notion.MultiSelectProperty{MultiSelect: options},
			"Status": &notion.SelectProperty{Select: &notion.SelectOption{Name: "Published"}},
		},
	}
}

func publishedQuery(direction notion.SortDirection, extra ...notion.Filter) notion.QueryRequest {
	filters := append([]notion.Filter{publishedFilter()}, extra...)
	return notion.QueryRequest{
		Filter: notion.CompoundFilter{And: filters},
		Sorts:  []notion.Sort{{Property: "Date", Direction: direction}},
	}
}

func slugQuery(slug string) notion.QueryRequest {
	return notion.QueryRequest{
		Filter: notion.CompoundFilter{And: []notion.Filter{
			notion.PropertyFilter{Property: "Slug", RichText: &notion.TextCondition{Equals: slug}},
			publishedFilter(),
		}},
	}
}

// --- Tests ---

func TestPublished_Success(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	pages := []notion.Page{
		publishedPage("b", "B", "post-b", "y"),
		{Object: "page", ID: "partial"},
		publishedPage("a", "A", "post-a", "x", "y"),
	}
	api.On("QueryDatabase", testDatabaseID, publishedQuery(notion.Descending)).Return(pages, nil)

	posts, err := repo.Published(t.Context(), "", model.SortLatest)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "post-b", posts[0].Slug)
	assert.Equal(t, "post-a", posts[1].Slug)
	assert.Equal(t, []string{"x", "y"}, posts[1].Tags)
	api.AssertExpectations(t)
}

func TestPublished_AllSentinelMeansNoTagFilter(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	api.On("QueryDatabase", testDatabaseID, publishedQuery(notion.Descending)).Return([]notion.Page{}, nil).Times(3)

	for _, tag := range []string{"", "all", "전체"} {
		_, err := repo.Published(t.Context(), tag, model.SortLatest)
		require.NoError(t, err)
	}
	api.AssertExpectations(t)
}

func TestPublished_TagFilterAndOldestSort(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	tagFilter := notion.PropertyFilter{Property: "Tags", MultiSelect: &notion.MultiSelectCondition{Contains: "go"}}
	api.On("QueryDatabase", testDatabaseID, publishedQuery(notion.Ascending, tagFilter)).
		Return([]notion.Page{publishedPage("a", "A", "a", "go")}, nil)

	posts, err := repo.Published(t.Context(), "go", model.SortOldest)

	require.NoError(t, err)
	assert.Len(t, posts, 1)
	api.AssertExpectations(t)
}

func TestPublished_ProviderError(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	cause := &notion.APIError{Status: 502, Code: "bad_gateway"}
	api.On("QueryDatabase", testDatabaseID, mock.Anything).Return(nil, cause)

	posts, err := repo.Published(t.Context(), "", model.SortLatest)

	assert.Nil(t, posts)
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "query published posts", providerErr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestMissingConfiguration_NoNetworkCall(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		databaseID string
		missing    []string
	}{
		{"token", "", testDatabaseID, []string{"NOTION_TOKEN"}},
		{"database", "token", "", []string{"NOTION_DATABASE_ID"}},
		{"both", "", "", []string{"NOTION_TOKEN", "NOTION_DATABASE_ID"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockNotion)
			repo := NewPostRepository(api, tt.token, tt.databaseID)

			_, err := repo.Published(t.Context(), "", model.SortLatest)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.missing, cfgErr.Missing)

			_, err = repo.BySlug(t.Context(), "any")
			require.ErrorAs(t, err, &cfgErr)

			api.AssertNotCalled(t, "QueryDatabase", mock.Anything, mock.Anything)
			api.AssertNotCalled(t, "RetrievePage", mock.Anything)
		})
	}
}

func TestBySlug_Success(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	api.On("QueryDatabase", testDatabaseID, slugQuery("hello")).
		Return([]notion.Page{publishedPage("p1", "Hello", "hello")}, nil)

	post, err := repo.BySlug(t.Context(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, "Hello", post.Title)
	api.AssertExpectations(t)
}

func TestBySlug_NotFound(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	api.On("QueryDatabase", testDatabaseID, slugQuery("missing-post")).Return([]notion.Page{}, nil)

	post, err := repo.BySlug(t.Context(), "missing-post")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, ErrPostNotFound)
	api.AssertNotCalled(t, "RetrievePage", mock.Anything)
}

func TestBySlug_BlankSlugSkipsQuery(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	for _, slug := range []string{"", "   "} {
		post, err := repo.BySlug(t.Context(), slug)

		assert.Nil(t, post)
		assert.ErrorIs(t, err, ErrPostNotFound)
	}
	api.AssertNotCalled(t, "QueryDatabase", mock.Anything, mock.Anything)
}

func TestBySlug_InvalidShape(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	api.On("QueryDatabase", testDatabaseID, slugQuery("partial")).
		Return([]notion.Page{{Object: "page", ID: "p"}}, nil)

	_, err := repo.BySlug(t.Context(), "partial")

	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestBySlug_ProviderError(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	api.On("QueryDatabase", testDatabaseID, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := repo.BySlug(t.Context(), "hello")

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBySlug_PageIDFallback(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	page := publishedPage(testPageID, "No slug", "")
	api.On("QueryDatabase", testDatabaseID, slugQuery(testPageID)).Return([]notion.Page{}, nil)
	api.On("RetrievePage", testPageID).Return(&page, nil)

	post, err := repo.BySlug(t.Context(), testPageID)

	require.NoError(t, err)
	assert.Equal(t, testPageID, post.Slug)
	api.AssertExpectations(t)
}

func TestBySlug_PageIDFallbackRejectsDrafts(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	draft := publishedPage(testPageID, "Draft", "")
	draft.Properties["Status"] = &notion.SelectProperty{Select: &notion.SelectOption{Name: "Draft"}}
	api.On("QueryDatabase", testDatabaseID, slugQuery(testPageID)).Return([]notion.Page{}, nil)
	api.On("RetrievePage", testPageID).Return(&draft, nil)

	_, err := repo.BySlug(t.Context(), testPageID)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBySlug_PageIDFallbackRejectsOtherDatabases(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	foreign := publishedPage(testPageID, "Elsewhere", "")
	foreign.Parent.DatabaseID = "99999999-2222-3333-4444-555555555555"
	api.On("QueryDatabase", testDatabaseID, slugQuery(testPageID)).Return([]notion.Page{}, nil)
	api.On("RetrievePage", testPageID).Return(&foreign, nil)

	_, err := repo.BySlug(t.Context(), testPageID)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBySlug_PageIDFallbackNotFound(t *testing.T) {
	api := new(mockNotion)
	repo := NewPostRepository(api, "token", testDatabaseID)

	api.On("QueryDatabase", testDatabaseID, slugQuery(testPageID)).Return([]notion.Page{}, nil)
	api.On("RetrievePage", testPageID).Return(nil, &notion.APIError{Status: 404, Code: "object_not_found"})

	_, err := repo.BySlug(t.Context(), testPageID)

	assert.ErrorIs(t, err, ErrPostNotFound)
}
