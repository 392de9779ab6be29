package components

import (
	"net/url"

	"github.com/templui/notionblog/internal/model"
)

// HomeURL links to the home page filtered by tag and sorted by sort. Default
// values are left out of the query.
func HomeURL(tag string, sort model.SortOrder) string {
	q := url.Values{}
	if !model.IsAllTag(tag) {
		q.Set("tag", tag)
	}
	if sort == model.SortOldest {
		q.Set("sort", string(sort))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

// PostURL links to the detail page of post.
func PostURL(post model.Post) string {
	return "/blog/" + url.PathEscape(post.Slug)
}

// FormatDate renders a post date as 2006.01.02. Unparsable dates are shown
// as stored.
func FormatDate(post model.Post) string {
	t := post.PublishedAt()
	if t.IsZero() {
		return post.Date
	}
	return t.Format("2006.01.02")
}
