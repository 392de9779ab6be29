package middleware

import (
	"net/http"

	"github.com/templui/notionblog/internal/config"
	"github.com/templui/notionblog/internal/ctxkeys"
)

// Config middleware adds the sanitized app configuration to the request context.
// The Notion token and database id never reach templates.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), cfg.Sanitized())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
