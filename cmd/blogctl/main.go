package main

import (
	"log/slog"
	"os"

	"github.com/templui/notionblog/cmd/blogctl/cmd"
	"github.com/templui/notionblog/internal/app"
	"github.com/templui/notionblog/internal/config"
)

func main() {
	// Keep stdout for command output
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	rootCmd := cmd.RootCmd(func() *app.App {
		return app.New(config.Load())
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
