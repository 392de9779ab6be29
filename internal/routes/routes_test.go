package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/templui/notionblog/internal/app"
	"github.com/templui/notionblog/internal/config"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	notionCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notionCalls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { assert.Zero(t, notionCalls, "notion must not be called without configuration") })

	cfg := &config.Config{
		AppName:           "Dev Log",
		AppEnv:            "production",
		AppURL:            "https://blog.example.com",
		ContentPath:       t.TempDir(),
		NotionAPIURL:      srv.URL,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
	return SetupRoutes(app.NewWithHTTPClient(cfg, srv.Client()))
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		target string
		status int
	}{
		{"/", http.StatusOK},
		{"/?tag=go&sort=oldest", http.StatusOK},
		{"/robots.txt", http.StatusOK},
		{"/sitemap.xml", http.StatusOK},
		{"/assets/css/app.css", http.StatusOK},
		{"/blog/tag/go", http.StatusMovedPermanently},
		{"/blog/some-post", http.StatusInternalServerError},
		{"/does/not/exist", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(h, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRoutes_SetsSecurityHeadersAndRequestID(t *testing.T) {
	rec := get(newTestHandler(t), "/")

	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Body.String(), "게시글이 없습니다.")
}
