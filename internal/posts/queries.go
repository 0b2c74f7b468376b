package posts

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const getPostMessageType = "blog.posts.get"

// GetPostQuery looks up a single post by slug.
type GetPostQuery struct {
	Slug string `json:"slug"`
}

// Type implements command.Message.
func (GetPostQuery) Type() string { return getPostMessageType }

// Validate ensures a slug is present before the catalog is queried.
func (q GetPostQuery) Validate() error {
	err := validation.ValidateStruct(&q,
		validation.Field(&q.Slug, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.posts.get.slug_required", "slug is required")
			}
			return nil
		})),
	)
	if err != nil {
		return wrapQueryError(err)
	}
	return nil
}
