package service

import (
	"context"
	"encoding/xml"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/templui/notionblog/internal/model"
)

type SitemapService struct {
	blogService *BlogService
	baseURL     string
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(blogService *BlogService, baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		blogService: blogService,
		baseURL:     baseURL,
	}
}

// GenerateSitemap lists the home page, every published post and one filtered
// home page per tag.
func (s *SitemapService) GenerateSitemap(ctx context.Context) ([]byte, error) {
	today := time.Now().Format("2006-01-02")

	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []model.SitemapURL{{
			Loc:        s.baseURL + "/",
			LastMod:    today,
			ChangeFreq: "daily",
			Priority:   "1.0",
		}},
	}

	posts, err := s.blogService.PublishedPosts(ctx, model.AllTagID, model.SortLatest)
	if err != nil {
		// Log error but don't fail, the home page is still worth listing
		slog.WarnContext(ctx, "failed to get blog URLs for sitemap", "error", err)
	} else {
		sitemap.URLs = append(sitemap.URLs, s.postURLs(posts, today)...)
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output)
	return []byte(result), nil
}

func (s *SitemapService) postURLs(posts []model.Post, today string) []model.SitemapURL {
	urls := make([]model.SitemapURL, 0, len(posts))
	for _, post := range posts {
		lastMod := today
		if t := post.ModifiedAt(); !t.IsZero() {
			lastMod = t.Format("2006-01-02")
		} else if t := post.PublishedAt(); !t.IsZero() {
			lastMod = t.Format("2006-01-02")
		}

		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/blog/" + url.PathEscape(post.Slug),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	for _, tag := range model.ComputeTags(posts)[1:] {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/?tag=" + url.QueryEscape(tag.Name),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}

	return urls
}
