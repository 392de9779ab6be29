package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/notionblog/internal/model"
)

func TestGenerateSitemap(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("Published", model.AllTagID, model.SortLatest).Return([]model.Post{
		{ID: "1", Slug: "hello-world", Date: "2024-02-01", ModifiedDate: "2024-02-03T10:00:00.000Z", Tags: []string{"개발"}},
		{ID: "2", Slug: "second", Date: "2024-01-01", Tags: []string{"go"}},
	}, nil)
	svc := NewSitemapService(NewBlogService(repo, new(mockConverter)), "https://blog.example.com/")

	out, err := svc.GenerateSitemap(t.Context())

	require.NoError(t, err)
	xml := string(out)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "<loc>https://blog.example.com/</loc>")
	assert.Contains(t, xml, "<loc>https://blog.example.com/blog/hello-world</loc>")
	assert.Contains(t, xml, "<lastmod>2024-02-03</lastmod>")
	assert.Contains(t, xml, "<lastmod>2024-01-01</lastmod>")
	assert.Contains(t, xml, "<loc>https://blog.example.com/?tag=go</loc>")
	assert.Contains(t, xml, "<loc>https://blog.example.com/?tag=%EA%B0%9C%EB%B0%9C</loc>")
}

func TestGenerateSitemap_ListsHomeWhenPostsFail(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("Published", model.AllTagID, model.SortLatest).Return(nil, errors.New("down"))
	svc := NewSitemapService(NewBlogService(repo, new(mockConverter)), "https://blog.example.com")

	out, err := svc.GenerateSitemap(t.Context())

	require.NoError(t, err)
	assert.Contains(t, string(out), "<loc>https://blog.example.com/</loc>")
	assert.NotContains(t, string(out), "/blog/")
}
