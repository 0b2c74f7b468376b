package bootstrap

import (
	"fmt"

	"github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options captures overrides applied on top of the loaded configuration.
type Options struct {
	LoggerProvider interfaces.LoggerProvider
	Source         interfaces.DocumentSource
}

// Module wraps the blog module and the CLI logger.
type Module struct {
	Module *blog.Module
	Posts   interfaces.PostService
	GetPost *posts.GetPostHandler
	Logger  interfaces.Logger
}

// BuildModule constructs a blog module for command line use.
func BuildModule(cfg blog.Config, opts Options) (*Module, error) {
	moduleOpts := []blog.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, blog.WithLoggerProvider(opts.LoggerProvider))
	}
	if opts.Source != nil {
		moduleOpts = append(moduleOpts, blog.WithDocumentSource(opts.Source))
	}

	module, err := blog.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	logger := logging.CLILogger(module.LoggerProvider())
	logger.Debug("cli.module.ready",
		"content_dir", cfg.Posts.ContentDir,
		"engine", cfg.Frontmatter.Engine,
	)

	service := module.Posts()
	return &Module{
		Module:  module,
		Posts:   service,
		GetPost: posts.NewGetPostHandler(service, logger),
		Logger:  logger,
	}, nil
}
