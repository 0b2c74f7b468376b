package posts

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/content"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/util"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// CatalogOption configures the catalog at construction time.
type CatalogOption func(*Catalog)

// WithParserLoader overrides how the richer frontmatter parser is acquired.
// Passing nil keeps the built-in line parser as the only strategy.
func WithParserLoader(loader markdown.ParserLoader) CatalogOption {
	return func(c *Catalog) {
		c.loader = loader
	}
}

// WithLogger sets the logger used for fallback and failure reporting.
func WithLogger(logger interfaces.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFrontMatterLogger sets the logger used for frontmatter engine fallback and
// parse failures. It defaults to the catalog logger.
func WithFrontMatterLogger(logger interfaces.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.frontmatterLogger = logger
		}
	}
}

// WithWordsPerMinute overrides the reading speed used for read-time estimates.
func WithWordsPerMinute(wpm int) CatalogOption {
	return func(c *Catalog) {
		if wpm > 0 {
			c.wordsPerMinute = wpm
		}
	}
}

// WithSlugNormalization normalizes filename-derived slugs. Slugs set in
// frontmatter are never rewritten.
func WithSlugNormalization(enabled bool) CatalogOption {
	return func(c *Catalog) {
		c.normalizeSlugs = enabled
	}
}

// WithOutlineExtensions selects the goldmark extensions used when extracting
// the heading and first paragraph of each post.
func WithOutlineExtensions(extensions ...string) CatalogOption {
	return func(c *Catalog) {
		c.outline = markdown.NewOutlineExtractor(extensions)
	}
}

// Catalog builds the post list from a document source. Nothing is cached:
// every query re-reads the source and re-parses each document.
type Catalog struct {
	source            interfaces.DocumentSource
	loader            markdown.ParserLoader
	fallback          interfaces.FrontMatterParser
	outline           *markdown.OutlineExtractor
	logger            interfaces.Logger
	frontmatterLogger interfaces.Logger
	wordsPerMinute    int
	normalizeSlugs    bool
}

type queryLoggers struct {
	posts       interfaces.Logger
	frontmatter interfaces.Logger
}

var _ interfaces.PostService = (*Catalog)(nil)

// NewCatalog constructs a catalog over source. A nil source reads the
// embedded documents.
func NewCatalog(source interfaces.DocumentSource, opts ...CatalogOption) *Catalog {
	if source == nil {
		source = NewFSSource(content.FS(), markdown.LoaderConfig{Root: content.Root, Recursive: true})
	}

	c := &Catalog{
		source:         source,
		loader:         markdown.EngineLoader(markdown.EngineConfig{}),
		fallback:       markdown.LineParser{},
		logger:         logging.NoOp(),
		wordsPerMinute: markdown.DefaultWordsPerMinute,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.outline == nil {
		c.outline = markdown.NewOutlineExtractor(nil)
	}
	if c.frontmatterLogger == nil {
		c.frontmatterLogger = c.logger
	}

	return c
}

// Load builds the sorted post list, returning an error when the document
// source cannot be enumerated. Individual documents never fail the load.
func (c *Catalog) Load(ctx context.Context) (posts []*interfaces.Post, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			posts = nil
			err = wrapCatalogError(fmt.Errorf("posts: catalog panic: %v", recovered))
		}
	}()

	logs := c.loggers(ctx)
	parser := c.activeParser(ctx, logs.frontmatter)

	documents, err := c.source.Documents(ctx)
	if err != nil {
		return nil, wrapCatalogError(err)
	}

	posts = make([]*interfaces.Post, 0, len(documents))
	for _, doc := range documents {
		posts = append(posts, c.buildPost(doc, parser, logs))
	}

	sortPosts(posts)
	return posts, nil
}

// ListPosts returns every post, newest first. Failures are logged and yield an
// empty list.
func (c *Catalog) ListPosts(ctx context.Context) []*interfaces.Post {
	ctx = queryContext(ctx, map[string]any{"operation": "list_posts"})
	logger := c.logger.WithContext(ctx)

	posts, err := c.Load(ctx)
	if err != nil {
		logger.Error("posts.catalog.list_failed", "error", err)
		return []*interfaces.Post{}
	}
	logger.Debug("posts.catalog.listed", "count", len(posts))
	return posts
}

// GetPost returns the first post whose slug equals slug exactly, or nil.
func (c *Catalog) GetPost(ctx context.Context, slug string) *interfaces.Post {
	ctx = queryContext(ctx, map[string]any{"operation": "get_post", "slug": slug})
	logger := c.logger.WithContext(ctx)

	posts, err := c.Load(ctx)
	if err != nil {
		logger.Error("posts.catalog.get_failed", "error", err)
		return nil
	}
	for _, post := range posts {
		if post.Slug == slug {
			return post
		}
	}
	return nil
}

func queryContext(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.ContextWithFields(ctx, fields)
}

func (c *Catalog) loggers(ctx context.Context) queryLoggers {
	return queryLoggers{
		posts:       c.logger.WithContext(ctx),
		frontmatter: c.frontmatterLogger.WithContext(ctx),
	}
}

func (c *Catalog) activeParser(ctx context.Context, logger interfaces.Logger) interfaces.FrontMatterParser {
	if c.loader == nil {
		return c.fallback
	}

	parser, err := c.loadParser(ctx)
	if err != nil || parser == nil {
		if err == nil {
			err = markdown.ErrEngineDisabled
		}
		logger.Warn("posts.frontmatter.engine_unavailable", "error", err, "fallback", markdown.EngineLines)
		return c.fallback
	}
	return parser
}

func (c *Catalog) loadParser(ctx context.Context) (parser interfaces.FrontMatterParser, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			parser = nil
			err = fmt.Errorf("posts: frontmatter loader panic: %v", recovered)
		}
	}()
	return c.loader(ctx)
}

func (c *Catalog) buildPost(doc interfaces.SourceDocument, parser interfaces.FrontMatterParser, logs queryLoggers) *interfaces.Post {
	parsed, err := safeParse(parser, doc.Raw)
	if err != nil {
		logging.WithDocumentContext(logs.frontmatter, doc.ID, engineName(parser), "").
			Error("posts.frontmatter.parse_failed", "error", err)
		parsed = interfaces.ParsedDocument{Data: map[string]string{}, Content: doc.Raw}
	}

	metadata := util.CloneStringMap(parsed.Data)

	post := &interfaces.Post{
		SourceID: doc.ID,
		Metadata: metadata,
		Slug:     c.resolveSlug(doc.ID, metadata, logs.posts),
		Content:  parsed.Content,
		ReadTime: markdown.EstimateReadTime(parsed.Content, c.wordsPerMinute),
		Outline:  c.outline.Extract(parsed.Content),
	}

	if date, ok := metadata["date"]; ok {
		published, err := ParseDate(date)
		if err != nil {
			logging.WithDocumentContext(logs.posts, doc.ID, "", post.Slug).
				Debug("posts.catalog.date_unparsed", "date", date, "error", err)
		}
		post.PublishedAt = published
	}

	return post
}

func (c *Catalog) resolveSlug(documentID string, metadata map[string]string, logger interfaces.Logger) string {
	if slug, ok := metadata["slug"]; ok && slug != "" {
		return slug
	}

	candidate := CandidateSlug(documentID)
	if !c.normalizeSlugs {
		return candidate
	}

	normalized, err := content.NormalizeSlug(candidate)
	if err != nil || normalized == "" {
		logger.Debug("posts.catalog.slug_not_normalized", "document", documentID, "slug", candidate, "error", err)
		return candidate
	}
	if !content.IsValidSlug(normalized) {
		logger.Debug("posts.catalog.slug_invalid", "document", documentID, "slug", normalized)
	}
	return normalized
}

// CandidateSlug derives a slug from a document identifier: the final path
// segment without its markdown extension.
func CandidateSlug(documentID string) string {
	base := path.Base(strings.ReplaceAll(documentID, "\\", "/"))
	for _, ext := range []string{".md", ".markdown"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}

func safeParse(parser interfaces.FrontMatterParser, raw string) (doc interfaces.ParsedDocument, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			doc = interfaces.ParsedDocument{}
			err = fmt.Errorf("posts: frontmatter parser panic: %v", recovered)
		}
	}()
	return parser.Parse(raw)
}

func engineName(parser interfaces.FrontMatterParser) string {
	switch p := parser.(type) {
	case *markdown.EngineParser:
		return p.Engine()
	case markdown.LineParser:
		return markdown.EngineLines
	default:
		return ""
	}
}

// sortPosts orders posts newest first. Posts without a parseable date keep
// their relative order after every dated post.
func sortPosts(posts []*interfaces.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		left, right := posts[i].PublishedAt, posts[j].PublishedAt
		switch {
		case left.IsZero():
			return false
		case right.IsZero():
			return true
		default:
			return left.After(right)
		}
	})
}
