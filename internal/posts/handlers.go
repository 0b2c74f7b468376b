package posts

import (
	"context"
	"errors"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ErrServiceRequired is returned when a query handler has no post service.
var ErrServiceRequired = errors.New("posts: post service is required")

// GetPostHandler resolves GetPostQuery messages against a post service. A
// missing post is not an error: the returned post is nil.
type GetPostHandler = commands.QueryHandler[GetPostQuery, *interfaces.Post]

// NewGetPostHandler wires a GetPostQuery handler over service.
func NewGetPostHandler(service interfaces.PostService, logger interfaces.Logger) *GetPostHandler {
	return commands.NewQueryHandler[GetPostQuery, *interfaces.Post](
		func(ctx context.Context, query GetPostQuery) (*interfaces.Post, error) {
			if service == nil {
				return nil, ErrServiceRequired
			}
			return service.GetPost(ctx, query.Slug), nil
		},
		commands.WithLogger[GetPostQuery](logger),
		commands.WithOperation[GetPostQuery]("get_post"),
	)
}
