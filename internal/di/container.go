package di

import (
	"os"
	"strings"

	"github.com/goliatone/go-blog/content"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/console"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Container wires the blog module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	source         interfaces.DocumentSource
	parserLoader   markdown.ParserLoader
	loaderSet      bool

	catalog *posts.Catalog
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithDocumentSource replaces the embedded documents with source.
func WithDocumentSource(source interfaces.DocumentSource) Option {
	return func(c *Container) {
		if source != nil {
			c.source = source
		}
	}
}

// WithParserLoader overrides how the external frontmatter parser is acquired.
// A nil loader disables it.
func WithParserLoader(loader markdown.ParserLoader) Option {
	return func(c *Container) {
		c.parserLoader = loader
		c.loaderSet = true
	}
}

// NewContainer validates cfg and builds the post catalog.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureSource()
	c.configureParserLoader()
	c.configureCatalog()

	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		var minLevel *console.Level
		if level, ok := console.ParseLevel(c.Config.Logging.Level); ok {
			minLevel = &level
		}
		c.loggerProvider = console.NewProvider(console.Options{
			Writer:   os.Stderr,
			MinLevel: minLevel,
		})
	}
	return nil
}

func (c *Container) configureSource() {
	if c.source != nil {
		return
	}

	cfg := markdown.LoaderConfig{
		Root:      content.Root,
		Pattern:   c.Config.Posts.Pattern,
		Recursive: c.Config.Posts.Recursive,
	}
	if dir := strings.TrimSpace(c.Config.Posts.ContentDir); dir != "" {
		cfg.Root = "."
		c.source = posts.NewFSSource(os.DirFS(dir), cfg)
		return
	}
	c.source = posts.NewFSSource(content.FS(), cfg)
}

func (c *Container) configureParserLoader() {
	if c.loaderSet {
		return
	}
	if !c.Config.Features.ExternalFrontmatter {
		c.parserLoader = nil
		return
	}
	c.parserLoader = markdown.EngineLoader(markdown.EngineConfig{
		Engine: c.Config.Frontmatter.Engine,
	})
}

func (c *Container) configureCatalog() {
	logger := logging.PostsLogger(c.loggerProvider)

	c.catalog = posts.NewCatalog(c.source,
		posts.WithParserLoader(c.parserLoader),
		posts.WithLogger(logger),
		posts.WithFrontMatterLogger(logging.FrontMatterLogger(c.loggerProvider)),
		posts.WithWordsPerMinute(c.Config.Posts.WordsPerMinute),
		posts.WithSlugNormalization(c.Config.Posts.NormalizeSlugs),
		posts.WithOutlineExtensions(c.Config.Outline.Extensions...),
	)

	logger.Debug("posts.catalog.configured",
		"engine", markdown.NormalizeEngine(c.Config.Frontmatter.Engine),
		"external_frontmatter", c.parserLoader != nil,
		"content_dir", c.Config.Posts.ContentDir,
	)
}

// PostService exposes the configured post catalog.
func (c *Container) PostService() interfaces.PostService {
	return c.catalog
}

// Catalog exposes the concrete catalog, including its strict Load variant.
func (c *Container) Catalog() *posts.Catalog {
	return c.catalog
}

// LoggerProvider exposes the logger provider in use. It is nil when logging is
// disabled and no provider was supplied.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}
