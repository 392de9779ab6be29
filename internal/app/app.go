package app

import (
	"net/http"

	"github.com/templui/notionblog/internal/config"
	"github.com/templui/notionblog/internal/notion"
	"github.com/templui/notionblog/internal/repository"
	"github.com/templui/notionblog/internal/service"
)

type App struct {
	Cfg            *config.Config
	Notion         *notion.Client
	BlogService    *service.BlogService
	ProfileService *service.ProfileService
}

// New wires the Notion client into the services. Missing Notion settings are
// not an error here; they surface per request as a ConfigurationError.
func New(cfg *config.Config) *App {
	return NewWithHTTPClient(cfg, nil)
}

// NewWithHTTPClient is New with a custom base HTTP client for Notion calls.
func NewWithHTTPClient(cfg *config.Config, httpClient *http.Client) *App {
	// Notion
	client := notion.New(notion.Options{
		Token:             cfg.NotionToken,
		BaseURL:           cfg.NotionAPIURL,
		Version:           cfg.NotionVersion,
		RequestsPerSecond: cfg.NotionRPS,
		Timeout:           cfg.NotionTimeout,
		HTTPClient:        httpClient,
	})

	// Repositories
	postRepository := repository.NewPostRepository(client, cfg.NotionToken, cfg.NotionDatabaseID)

	// Services
	blogService := service.NewBlogService(postRepository, notion.NewMarkdownConverter(client))
	profileService := service.NewProfileService(cfg.ContentPath, cfg.AppName)

	return &App{
		Cfg:            cfg,
		Notion:         client,
		BlogService:    blogService,
		ProfileService: profileService,
	}
}
