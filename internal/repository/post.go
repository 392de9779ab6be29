package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/notion"
)

type PostRepository interface {
	Published(ctx context.Context, tag string, sort model.SortOrder) ([]model.Post, error)
	BySlug(ctx context.Context, slug string) (*model.Post, error)
}

// NotionAPI is the part of *notion.Client the repository uses.
type NotionAPI interface {
	QueryDatabase(ctx context.Context, databaseID string, query notion.QueryRequest) ([]notion.Page, error)
	RetrievePage(ctx context.Context, pageID string) (*notion.Page, error)
}

type postRepository struct {
	api        NotionAPI
	token      string
	databaseID string
}

// NewPostRepository reads posts from a Notion database. token is only checked
// for presence here; the client carries it on the wire.
func NewPostRepository(api NotionAPI, token, databaseID string) PostRepository {
	return &postRepository{
		api:        api,
		token:      token,
		databaseID: databaseID,
	}
}

func (r *postRepository) validate() error {
	var missing []string
	if r.token == "" {
		missing = append(missing, "NOTION_TOKEN")
	}
	if r.databaseID == "" {
		missing = append(missing, "NOTION_DATABASE_ID")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

func (r *postRepository) Published(ctx context.Context, tag string, sort model.SortOrder) ([]model.Post, error) {
	err := r.validate()
	if err != nil {
		return nil, err
	}

	filters := []notion.Filter{publishedFilter()}
	if !model.IsAllTag(tag) {
		filters = append(filters, notion.PropertyFilter{
			Property:    propTags,
			MultiSelect: &notion.MultiSelectCondition{Contains: tag},
		})
	}

	direction := notion.Descending
	if sort == model.SortOldest {
		direction = notion.Ascending
	}

	pages, err := r.api.QueryDatabase(ctx, r.databaseID, notion.QueryRequest{
		Filter: notion.CompoundFilter{And: filters},
		Sorts:  []notion.Sort{{Property: propDate, Direction: direction}},
	})
	if err != nil {
		return nil, &ProviderError{Op: "query published posts", Err: err}
	}

	posts := make([]model.Post, 0, len(pages))
	for _, page := range pages {
		if !page.HasProperties() {
			continue
		}
		posts = append(posts, PageToPost(page))
	}

	if len(posts) == 0 {
		slog.WarnContext(ctx, "no published posts found", "tag", tag)
	} else {
		slog.DebugContext(ctx, "published posts loaded", "count", len(posts), "tag", tag, "sort", sort)
	}
	return posts, nil
}

func (r *postRepository) BySlug(ctx context.Context, slug string) (*model.Post, error) {
	err := r.validate()
	if err != nil {
		return nil, err
	}
	// An empty equals condition is rejected by the Notion API
	if strings.TrimSpace(slug) == "" {
		return nil, ErrPostNotFound
	}

	pages, err := r.api.QueryDatabase(ctx, r.databaseID, notion.QueryRequest{
		Filter: notion.CompoundFilter{And: []notion.Filter{
			notion.PropertyFilter{
				Property: propSlug,
				RichText: &notion.TextCondition{Equals: slug},
			},
			publishedFilter(),
		}},
	})
	if err != nil {
		return nil, &ProviderError{Op: "query post by slug", Err: err}
	}

	if len(pages) == 0 {
		return r.byPageID(ctx, slug)
	}

	page := pages[0]
	if !page.HasProperties() {
		return nil, ErrInvalidShape
	}

	post := PageToPost(page)
	return &post, nil
}

// byPageID resolves posts whose slug fell back to their page id.
func (r *postRepository) byPageID(ctx context.Context, slug string) (*model.Post, error) {
	id, err := uuid.Parse(slug)
	if err != nil {
		return nil, ErrPostNotFound
	}

	page, err := r.api.RetrievePage(ctx, id.String())
	if err != nil {
		if notion.IsNotFound(err) || notion.IsValidation(err) {
			return nil, ErrPostNotFound
		}
		return nil, &ProviderError{Op: "retrieve page", Err: err}
	}

	if !page.HasProperties() {
		return nil, ErrInvalidShape
	}
	if page.Archived || page.InTrash || !isPublished(*page) || !r.inDatabase(*page) {
		return nil, ErrPostNotFound
	}

	post := PageToPost(*page)
	return &post, nil
}

func (r *postRepository) inDatabase(page notion.Page) bool {
	return normalizeID(page.Parent.DatabaseID) == normalizeID(r.databaseID)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}

func publishedFilter() notion.PropertyFilter {
	return notion.PropertyFilter{
		Property: propStatus,
		Select:   &notion.SelectCondition{Equals: statusPublished},
	}
}
