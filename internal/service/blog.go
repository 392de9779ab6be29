package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/templui/notionblog/internal/markdown"
	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/repository"
)

// PageConverter renders the body of a page as Markdown.
// *notion.MarkdownConverter implements it.
type PageConverter interface {
	PageToMarkdown(ctx context.Context, pageID string) (string, error)
}

type BlogService struct {
	repo      repository.PostRepository
	converter PageConverter
	parser    *markdown.Parser
}

func NewBlogService(repo repository.PostRepository, converter PageConverter) *BlogService {
	return &BlogService{
		repo:      repo,
		converter: converter,
		parser:    markdown.NewParser(),
	}
}

func (s *BlogService) PublishedPosts(ctx context.Context, tag string, sort model.SortOrder) ([]model.Post, error) {
	return s.repo.Published(ctx, tag, sort)
}

// PublishedPostsOrEmpty is PublishedPosts for list views: failures are
// reported and an empty list is returned instead.
func (s *BlogService) PublishedPostsOrEmpty(ctx context.Context, tag string, sort model.SortOrder) []model.Post {
	posts, err := s.PublishedPosts(ctx, tag, sort)
	if err != nil {
		s.reportListError(ctx, "failed to load published posts", err, "tag", tag, "sort", sort)
		return []model.Post{}
	}
	return posts
}

// Tags aggregates tags over every published post.
func (s *BlogService) Tags(ctx context.Context) ([]model.TagFilterItem, error) {
	posts, err := s.repo.Published(ctx, model.AllTagID, model.SortLatest)
	if err != nil {
		return nil, err
	}
	return model.ComputeTags(posts), nil
}

// TagsOrDefault falls back to the lone "all" entry when posts cannot be read.
func (s *BlogService) TagsOrDefault(ctx context.Context) []model.TagFilterItem {
	tags, err := s.Tags(ctx)
	if err != nil {
		s.reportListError(ctx, "failed to load tags", err)
		return model.ComputeTags(nil)
	}
	return tags
}

func (s *BlogService) reportListError(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)

	var cfgErr *repository.ConfigurationError
	if errors.As(err, &cfgErr) {
		args = append(args, "missing", strings.Join(cfgErr.Missing, ","))
	}
	slog.ErrorContext(ctx, msg, args...)
}

// PostBySlug loads one post with its rendered body.
func (s *BlogService) PostBySlug(ctx context.Context, slug string) (*model.PostDetail, error) {
	post, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load post %q: %w", slug, err)
	}

	md, err := s.converter.PageToMarkdown(ctx, post.ID)
	if err != nil {
		err = &repository.ProviderError{Op: "load page blocks", Err: err}
		return nil, fmt.Errorf("failed to load post %q: %w", slug, err)
	}

	html, err := s.parser.Parse([]byte(md))
	if err != nil {
		return nil, fmt.Errorf("failed to load post %q: %w", slug, err)
	}

	return &model.PostDetail{
		Post:     *post,
		Markdown: md,
		HTML:     string(html),
		ReadTime: s.calculateReadTime(md),
	}, nil
}

func (s *BlogService) calculateReadTime(content string) int {
	words := strings.Fields(content)
	wordsPerMinute := 200
	readTime := len(words) / wordsPerMinute
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}
