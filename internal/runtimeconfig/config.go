package runtimeconfig

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-blog/internal/markdown"
)

var ErrWordsPerMinuteInvalid = errors.New("blog config: words per minute must be zero or positive")
var ErrFrontmatterEngineUnknown = errors.New("blog config: frontmatter engine is invalid")
var ErrPostsPatternInvalid = errors.New("blog config: posts pattern is invalid")
var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates feature flags and options for the blog module.
type Config struct {
	Posts       PostsConfig       `mapstructure:"posts"`
	Frontmatter FrontmatterConfig `mapstructure:"frontmatter"`
	Outline     OutlineConfig     `mapstructure:"outline"`
	Features    Features          `mapstructure:"features"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// PostsConfig controls where posts are read from and how they are derived.
type PostsConfig struct {
	// ContentDir reads posts from disk instead of the embedded documents.
	ContentDir     string `mapstructure:"content_dir"`
	Pattern        string `mapstructure:"pattern"`
	Recursive      bool   `mapstructure:"recursive"`
	WordsPerMinute int    `mapstructure:"words_per_minute"`
	NormalizeSlugs bool   `mapstructure:"normalize_slugs"`
}

// FrontmatterConfig selects the block engine of the external frontmatter parser.
type FrontmatterConfig struct {
	Engine string `mapstructure:"engine"`
}

// OutlineConfig lists goldmark extensions used for title and excerpt extraction.
type OutlineConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// Features toggles optional behaviour.
type Features struct {
	// ExternalFrontmatter enables the engine parser. When off, or when the
	// engine cannot be loaded, the built-in line parser is used.
	ExternalFrontmatter bool `mapstructure:"external_frontmatter"`
	Logger              bool `mapstructure:"logger"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Posts: PostsConfig{
			Pattern:        "*.md",
			Recursive:      true,
			WordsPerMinute: markdown.DefaultWordsPerMinute,
		},
		Frontmatter: FrontmatterConfig{
			Engine: markdown.EngineLines,
		},
		Outline: OutlineConfig{
			Extensions: []string{"gfm"},
		},
		Features: Features{
			ExternalFrontmatter: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate checks the configuration and returns the first sentinel error found.
func (cfg Config) Validate() error {
	if cfg.Posts.WordsPerMinute < 0 {
		return fmt.Errorf("%w: %d", ErrWordsPerMinuteInvalid, cfg.Posts.WordsPerMinute)
	}
	if pattern := strings.TrimSpace(cfg.Posts.Pattern); pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: %s", ErrPostsPatternInvalid, pattern)
		}
	}
	if cfg.Features.ExternalFrontmatter && !markdown.IsSupportedEngine(cfg.Frontmatter.Engine) {
		return fmt.Errorf("%w: %s", ErrFrontmatterEngineUnknown, cfg.Frontmatter.Engine)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
