package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/templui/notionblog/internal/app"
	"github.com/templui/notionblog/internal/model"
	"golang.org/x/sync/errgroup"
)

func TagsCmd(newApp func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with post counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			tags, err := a.BlogService.Tags(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			rows := make([][]string, 0, len(tags))
			for _, tag := range tags {
				rows = append(rows, []string{tag.Name, strconv.Itoa(tag.Count)})
			}
			return printTable(cmd.OutOrStdout(), []string{"name", "count"}, rows)
		},
	}
}

// StatusCmd checks that Notion is configured and reachable by loading the
// list and tag views concurrently, as the home page does.
func StatusCmd(newApp func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the Notion connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()

			var posts []model.Post
			var tags []model.TagFilterItem
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				posts, err = a.BlogService.PublishedPosts(ctx, model.AllTagID, model.SortLatest)
				return err
			})
			g.Go(func() error {
				var err error
				tags, err = a.BlogService.Tags(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("notion is not reachable: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d published posts, %d tags\n", len(posts), len(tags)-1)
			return nil
		},
	}
}
