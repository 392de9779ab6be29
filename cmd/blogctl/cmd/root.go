package cmd

import (
	"github.com/spf13/cobra"
	"github.com/templui/notionblog/internal/app"
)

// RootCmd builds the blogctl command tree. newApp is called lazily so --help
// works without any configuration.
func RootCmd(newApp func() *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "blogctl",
		Short:        "Inspect the Notion blog from the terminal",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(PostsCmd(newApp))
	rootCmd.AddCommand(TagsCmd(newApp))
	rootCmd.AddCommand(PostCmd(newApp))
	rootCmd.AddCommand(StatusCmd(newApp))
	return rootCmd
}
