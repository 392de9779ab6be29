package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/templui/notionblog/internal/app"
	"github.com/templui/notionblog/internal/model"
)

func PostsCmd(newApp func() *app.App) *cobra.Command {
	var tag, sort string

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List published posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			posts, err := a.BlogService.PublishedPosts(cmd.Context(), tag, model.ParseSortOrder(sort))
			if err != nil {
				return fmt.Errorf("failed to list posts: %w", err)
			}

			rows := make([][]string, 0, len(posts))
			for _, post := range posts {
				rows = append(rows, []string{post.Date, post.Slug, post.Title, strings.Join(post.Tags, ", ")})
			}
			return printTable(cmd.OutOrStdout(), []string{"date", "slug", "title", "tags"}, rows)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", model.AllTagName, "only posts with this tag")
	cmd.Flags().StringVar(&sort, "sort", string(model.SortLatest), "latest or oldest")
	return cmd
}

func PostCmd(newApp func() *app.App) *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "post <slug>",
		Short: "Print a post as Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			detail, err := a.BlogService.PostBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if html {
				fmt.Fprintln(out, detail.HTML)
				return nil
			}
			fmt.Fprintf(out, "# %s\n\n%s\n", detail.Post.Title, detail.Markdown)
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "print the rendered HTML instead")
	return cmd
}
