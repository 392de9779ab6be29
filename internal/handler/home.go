package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/service"
	"github.com/templui/notionblog/internal/ui"
	"github.com/templui/notionblog/internal/ui/pages"
	"github.com/templui/notionblog/internal/validation"
	"golang.org/x/sync/errgroup"
)

type HomeHandler struct {
	blogService    *service.BlogService
	profileService *service.ProfileService
}

func NewHomeHandler(blogService *service.BlogService, profileService *service.ProfileService) *HomeHandler {
	return &HomeHandler{
		blogService:    blogService,
		profileService: profileService,
	}
}

// HomePage lists published posts filtered by ?tag= and ordered by ?sort=.
// Posts, tags and the profile load concurrently; none of them fails the page.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	tag := query.Get("tag")
	if tag == "" {
		tag = model.AllTagName
	}
	err := validation.ValidateTag(tag)
	if err != nil {
		slog.WarnContext(r.Context(), "invalid tag filter", "tag", tag, "error", err)
		tag = model.AllTagName
	}
	sort := model.ParseSortOrder(query.Get("sort"))

	props := pages.HomeProps{ActiveTag: tag, Sort: sort}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		props.Posts = h.blogService.PublishedPostsOrEmpty(ctx, tag, sort)
		return nil
	})
	g.Go(func() error {
		props.Tags = h.blogService.TagsOrDefault(ctx)
		return nil
	})
	g.Go(func() error {
		profile, err := h.profileService.Profile()
		if err != nil {
			slog.ErrorContext(ctx, "failed to load profile", "error", err)
			return nil
		}
		props.Profile = profile
		return nil
	})
	_ = g.Wait()

	ui.Render(w, r, pages.Home(props))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
