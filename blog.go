package blog

import (
	"context"
	"errors"

	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Post exports the parsed post model.
type Post = interfaces.Post

// PostService exports the catalog query contract.
type PostService = interfaces.PostService

// DocumentSource exports the contract for supplying raw markdown documents.
type DocumentSource = interfaces.DocumentSource

// SourceDocument exports the raw document record.
type SourceDocument = interfaces.SourceDocument

// FrontMatterParser exports the frontmatter parsing strategy.
type FrontMatterParser = interfaces.FrontMatterParser

// ParsedDocument exports the metadata and body produced by a parser.
type ParsedDocument = interfaces.ParsedDocument

// FrontMatterParserFunc adapts a plain function to FrontMatterParser, which
// lets a ParserLoader hand back a custom parser without declaring a type.
type FrontMatterParserFunc = interfaces.FrontMatterParserFunc

// ParserLoader acquires the external frontmatter parser on each query.
type ParserLoader = markdown.ParserLoader

// StaticSource is a fixed, in-memory document table.
type StaticSource = posts.StaticSource

// GetPostQuery exports the validated single post lookup.
type GetPostQuery = posts.GetPostQuery

// Option customises module construction.
type Option = di.Option

var (
	WithLoggerProvider = di.WithLoggerProvider
	WithDocumentSource = di.WithDocumentSource
	WithParserLoader   = di.WithParserLoader
)

// ErrModuleNotInitialized is returned by LoadPosts on a module that was not
// built with New.
var ErrModuleNotInitialized = errors.New("blog: module not initialized")

// Module represents the top level blog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a blog module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Posts returns the configured post service.
func (m *Module) Posts() PostService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PostService()
}

// ListPosts returns every post, newest first. It never fails: problems are
// logged and yield an empty list.
func (m *Module) ListPosts(ctx context.Context) []*Post {
	service := m.Posts()
	if service == nil {
		return []*Post{}
	}
	return service.ListPosts(ctx)
}

// GetPost returns the post with the given slug, or nil.
func (m *Module) GetPost(ctx context.Context, slug string) *Post {
	service := m.Posts()
	if service == nil {
		return nil
	}
	return service.GetPost(ctx, slug)
}

// LoadPosts is the strict variant of ListPosts: a document source failure is
// returned instead of being logged.
func (m *Module) LoadPosts(ctx context.Context) ([]*Post, error) {
	if m == nil || m.container == nil {
		return nil, ErrModuleNotInitialized
	}
	return m.container.Catalog().Load(ctx)
}

// LoggerProvider returns the provider backing module loggers, or nil when
// logging is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}

// DisabledParserLoader returns a loader that always fails, leaving the
// built-in line parser in charge.
func DisabledParserLoader() ParserLoader {
	return markdown.DisabledLoader()
}
