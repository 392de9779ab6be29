package routes

import (
	"io/fs"
	"net/http"

	"github.com/templui/notionblog/assets"
	"github.com/templui/notionblog/internal/app"
	"github.com/templui/notionblog/internal/handler"
	"github.com/templui/notionblog/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.BlogService, app.ProfileService)
	seo := handler.NewSEOHandler(app.BlogService, app.Cfg.AppURL)
	blog := handler.NewBlogHandler(app.BlogService)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Home (?tag=, ?sort=)
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Content
	mux.HandleFunc("GET /blog/{slug}", blog.ShowPost)
	mux.HandleFunc("GET /blog/tag/{tag}", blog.ListByTag)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (needed by SecurityHeaders)
		middleware.RequestID,       // Before logging so every log line carries the id
		middleware.NonceMiddleware, // Generate CSP nonce for each request (must be before SecurityHeaders)
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.RateLimit(app.Cfg.RateLimitRequests, app.Cfg.RateLimitWindow),
		middleware.WithURLPath,
	)

	return handler
}
