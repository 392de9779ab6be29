package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/notionblog/internal/ctxkeys"
	"github.com/templui/notionblog/internal/model"
	"github.com/templui/notionblog/internal/repository"
	"github.com/templui/notionblog/internal/service"
	"github.com/templui/notionblog/internal/ui"
	"github.com/templui/notionblog/internal/ui/components"
	"github.com/templui/notionblog/internal/ui/pages"
	"github.com/templui/notionblog/internal/validation"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

func (h *BlogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	err := validation.ValidateSlug(slug)
	if err != nil {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}

	detail, err := h.blogService.PostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
			return
		}

		slog.ErrorContext(r.Context(), "failed to render post", "slug", slug, "error", err)
		var message string
		cfg := ctxkeys.Config(r.Context())
		if cfg != nil && cfg.IsDevelopment() {
			message = err.Error()
		}
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.Error(message))
		return
	}

	ui.Render(w, r, pages.Post(detail))
}

// ListByTag keeps old /blog/tag/{tag} links working; tag filtering lives on
// the home page.
func (h *BlogHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	sort := model.ParseSortOrder(r.URL.Query().Get("sort"))
	http.Redirect(w, r, components.HomeURL(tag, sort), http.StatusMovedPermanently)
}
