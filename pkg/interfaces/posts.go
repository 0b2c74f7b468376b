package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

// Post is a parsed blog post. Metadata carries every frontmatter key as found
// in the document; Slug, Content and ReadTime are always computed.
type Post struct {
	SourceID    string
	Metadata    map[string]string
	Slug        string
	Content     string
	ReadTime    string
	PublishedAt time.Time

	// Outline holds values extracted from the body, used when the frontmatter
	// does not provide a title or excerpt.
	Outline Outline
}

// Outline captures the first heading and first paragraph of a post body.
type Outline struct {
	Heading   string
	Paragraph string
}

// Title returns the frontmatter title, falling back to the first heading.
func (p *Post) Title() string {
	if p == nil {
		return ""
	}
	if title := p.Metadata["title"]; title != "" {
		return title
	}
	return p.Outline.Heading
}

// Date returns the raw frontmatter date string.
func (p *Post) Date() string {
	if p == nil {
		return ""
	}
	return p.Metadata["date"]
}

// Excerpt returns the frontmatter excerpt, falling back to the first paragraph.
func (p *Post) Excerpt() string {
	if p == nil {
		return ""
	}
	if excerpt := p.Metadata["excerpt"]; excerpt != "" {
		return excerpt
	}
	return p.Outline.Paragraph
}

// Field returns a metadata value by key.
func (p *Post) Field(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value, ok := p.Metadata[key]
	return value, ok
}

// MarshalJSON renders the post as a flat object: every metadata key plus the
// computed slug, content and readTime, which take precedence.
func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(p.Metadata)+3)
	for key, value := range p.Metadata {
		out[key] = value
	}
	out["slug"] = p.Slug
	out["content"] = p.Content
	out["readTime"] = p.ReadTime
	return json.Marshal(out)
}

// PostService exposes the two catalog queries. Neither returns an error:
// failures are logged and degrade to an empty list or a nil post.
type PostService interface {
	ListPosts(ctx context.Context) []*Post
	GetPost(ctx context.Context, slug string) *Post
}
