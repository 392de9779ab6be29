package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/repository"
)

// --- Mocks ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Published(ctx context.Context, tag string, sort model.SortOrder) ([]model.Post, error) {
	args := m.Called(tag, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *mockPostRepo) BySlug(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

type mockConverter struct {
	mock.Mock
}

func (m *mockConverter) PageToMarkdown(ctx context.Context, pageID string) (string, error) {
	args := m.Called(pageID)
	return args.String(0), args.Error(1)
}

// --- List path ---

func TestPublishedPostsOrEmpty_ReturnsPosts(t *testing.T) {
	repo := new(mockPostRepo)
	posts := []model.Post{{ID: "1", Slug: "one"}}
	repo.On("Published", "go", model.SortOldest).Return(posts, nil)

	svc := NewBlogService(repo, new(mockConverter))

	assert.Equal(t, posts, svc.PublishedPostsOrEmpty(t.Context(), "go", model.SortOldest))
	repo.AssertExpectations(t)
}

func TestPublishedPostsOrEmpty_SwallowsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"configuration", &repository.ConfigurationError{Missing: []string{"NOTION_TOKEN"}}},
		{"provider", &repository.ProviderError{Op: "query published posts", Err: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPostRepo)
			repo.On("Published", "", model.SortLatest).Return(nil, tt.err)

			svc := NewBlogService(repo, new(mockConverter))

			posts := svc.PublishedPostsOrEmpty(t.Context(), "", model.SortLatest)
			assert.NotNil(t, posts)
			assert.Empty(t, posts)
		})
	}
}

func TestPublishedPosts_SurfacesErrors(t *testing.T) {
	repo := new(mockPostRepo)
	cfgErr := &repository.ConfigurationError{Missing: []string{"NOTION_DATABASE_ID"}}
	repo.On("Published", "", model.SortLatest).Return(nil, cfgErr)

	_, err := NewBlogService(repo, new(mockConverter)).PublishedPosts(t.Context(), "", model.SortLatest)

	var target *repository.ConfigurationError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, []string{"NOTION_DATABASE_ID"}, target.Missing)
}

func TestTags_ComputesOverAllPosts(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("Published", model.AllTagID, model.SortLatest).Return([]model.Post{
		{ID: "b", Tags: []string{"y"}},
		{ID: "a", Tags: []string{"x", "y"}},
	}, nil)

	tags, err := NewBlogService(repo, new(mockConverter)).Tags(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []model.TagFilterItem{
		{ID: model.AllTagID, Name: model.AllTagName, Count: 2},
		{ID: "x", Name: "x", Count: 1},
		{ID: "y", Name: "y", Count: 2},
	}, tags)
}

func TestTagsOrDefault_FallsBackToAllEntry(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("Published", model.AllTagID, model.SortLatest).Return(nil, errors.New("unavailable"))

	tags := NewBlogService(repo, new(mockConverter)).TagsOrDefault(t.Context())

	assert.Equal(t, []model.TagFilterItem{{ID: model.AllTagID, Name: model.AllTagName, Count: 0}}, tags)
}

// --- Detail path ---

func TestPostBySlug_RendersBody(t *testing.T) {
	repo := new(mockPostRepo)
	conv := new(mockConverter)
	repo.On("BySlug", "hello").Return(&model.Post{ID: "page-1", Slug: "hello", Title: "Hello"}, nil)
	conv.On("PageToMarkdown", "page-1").Return("## Intro\n\nSome **bold** text", nil)

	detail, err := NewBlogService(repo, conv).PostBySlug(t.Context(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "Hello", detail.Post.Title)
	assert.Equal(t, "## Intro\n\nSome **bold** text", detail.Markdown)
	assert.Contains(t, detail.HTML, `<h2 id="intro">Intro</h2>`)
	assert.Contains(t, detail.HTML, "<strong>bold</strong>")
	assert.Equal(t, 1, detail.ReadTime)
	conv.AssertExpectations(t)
}

func TestPostBySlug_LeadingDividerKeepsBody(t *testing.T) {
	repo := new(mockPostRepo)
	conv := new(mockConverter)
	repo.On("BySlug", "dividers").Return(&model.Post{ID: "page-1", Slug: "dividers"}, nil)
	conv.On("PageToMarkdown", "page-1").Return("---\n\nIntro paragraph\n\n---\n\nRest of post", nil)

	detail, err := NewBlogService(repo, conv).PostBySlug(t.Context(), "dividers")

	require.NoError(t, err)
	assert.Contains(t, detail.HTML, "<p>Intro paragraph</p>")
	assert.Contains(t, detail.HTML, "<p>Rest of post</p>")
}

func TestPostBySlug_NotFoundIsWrapped(t *testing.T) {
	repo := new(mockPostRepo)
	conv := new(mockConverter)
	repo.On("BySlug", "missing-post").Return(nil, repository.ErrPostNotFound)

	_, err := NewBlogService(repo, conv).PostBySlug(t.Context(), "missing-post")

	require.ErrorIs(t, err, repository.ErrPostNotFound)
	assert.Equal(t, `failed to load post "missing-post": post not found`, err.Error())
	conv.AssertNotCalled(t, "PageToMarkdown", mock.Anything)
}

func TestPostBySlug_ConversionErrorIsWrapped(t *testing.T) {
	repo := new(mockPostRepo)
	conv := new(mockConverter)
	cause := errors.New("blocks unavailable")
	repo.On("BySlug", "hello").Return(&model.Post{ID: "page-1", Slug: "hello"}, nil)
	conv.On("PageToMarkdown", "page-1").Return("", cause)

	_, err := NewBlogService(repo, conv).PostBySlug(t.Context(), "hello")

	require.ErrorIs(t, err, cause)
	var provErr *repository.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "load page blocks", provErr.Op)
	assert.Contains(t, err.Error(), `failed to load post "hello"`)
}

func TestCalculateReadTime(t *testing.T) {
	svc := &BlogService{}

	assert.Equal(t, 1, svc.calculateReadTime(""))
	assert.Equal(t, 1, svc.calculateReadTime("a few words"))

	words := make([]byte, 0, 2*450)
	for range 450 {
		words = append(words, 'w', ' ')
	}
	assert.Equal(t, 2, svc.calculateReadTime(string(words)))
}
