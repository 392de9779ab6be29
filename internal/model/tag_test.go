package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTags_NoPosts(t *testing.T) {
	tags := ComputeTags(nil)

	assert.Equal(t, []TagFilterItem{{ID: AllTagID, Name: AllTagName, Count: 0}}, tags)
}

func TestComputeTags_CountsAndOrder(t *testing.T) {
	posts := []Post{
		{ID: "b", Slug: "b", Date: "2024-02-01", Tags: []string{"y"}},
		{ID: "a", Slug: "a", Date: "2024-01-01", Tags: []string{"x", "y"}},
	}

	tags := ComputeTags(posts)

	assert.Equal(t, []TagFilterItem{
		{ID: AllTagID, Name: AllTagName, Count: 2},
		{ID: "x", Name: "x", Count: 1},
		{ID: "y", Name: "y", Count: 2},
	}, tags)
}

func TestComputeTags_AllIsFirstAndCountsEveryPost(t *testing.T) {
	posts := []Post{
		{Slug: "1", Tags: []string{"a"}},
		{Slug: "2"},
		{Slug: "3", Tags: []string{"a", "b"}},
	}

	tags := ComputeTags(posts)

	require.NotEmpty(t, tags)
	assert.Equal(t, AllTagID, tags[0].ID)
	assert.Equal(t, len(posts), tags[0].Count)
	for _, tag := range tags[1:] {
		assert.Equal(t, tag.ID, tag.Name)
	}
}

func TestComputeTags_KoreanCollation(t *testing.T) {
	posts := []Post{
		{Slug: "1", Tags: []string{"일상", "개발"}},
		{Slug: "2", Tags: []string{"리뷰", "개발"}},
	}

	tags := ComputeTags(posts)

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{AllTagName, "개발", "리뷰", "일상"}, names)
	assert.Equal(t, 2, tags[1].Count)
}

func TestComputeTags_LatinAlphabetical(t *testing.T) {
	posts := []Post{
		{Slug: "1", Tags: []string{"zig", "rust", "go"}},
	}

	tags := ComputeTags(posts)

	require.Len(t, tags, 4)
	assert.Equal(t, "go", tags[1].Name)
	assert.Equal(t, "rust", tags[2].Name)
	assert.Equal(t, "zig", tags[3].Name)
}

func TestIsAllTag(t *testing.T) {
	assert.True(t, IsAllTag(""))
	assert.True(t, IsAllTag("all"))
	assert.True(t, IsAllTag("전체"))
	assert.False(t, IsAllTag("go"))
}
