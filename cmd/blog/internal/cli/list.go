package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts := a.module.Posts.ListPosts(cmd.Context())
			a.module.Logger.Debug("cli.list", "count", len(posts))

			if asJSON {
				encoder := json.NewEncoder(a.out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(posts)
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for _, post := range posts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", post.Date(), post.Slug, post.ReadTime, post.Title())
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print posts as JSON")
	return cmd
}
