package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog"
)

// ErrPostNotFound is returned by show when no post has the requested slug.
var ErrPostNotFound = errors.New("post not found")

func newShowCommand(a *app) *cobra.Command {
	var (
		asJSON   bool
		bodyOnly bool
	)

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := blog.GetPostQuery{Slug: args[0]}
			post, err := a.module.GetPost.Query(cmd.Context(), query)
			if err != nil {
				return err
			}
			if post == nil {
				a.module.Logger.Warn("cli.show.not_found", "slug", query.Slug)
				return fmt.Errorf("%w: %s", ErrPostNotFound, query.Slug)
			}

			switch {
			case asJSON:
				encoder := json.NewEncoder(a.out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(post)
			case bodyOnly:
				_, err := fmt.Fprintln(a.out, post.Content)
				return err
			default:
				_, err := fmt.Fprintf(a.out, "Title: %s\nDate: %s\nSlug: %s\nRead time: %s\n\n%s\n",
					post.Title(), post.Date(), post.Slug, post.ReadTime, post.Content)
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the post as JSON")
	cmd.Flags().BoolVar(&bodyOnly, "body", false, "Print only the markdown body")
	cmd.MarkFlagsMutuallyExclusive("json", "body")
	return cmd
}
