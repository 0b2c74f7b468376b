package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
)

const envPrefix = "BLOG"

var moduleBuilder = bootstrap.BuildModule

type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	module *bootstrap.Module
}

// NewRootCommand builds the blog command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "blog",
		Short:         "Browse the embedded blog post catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			module, err := moduleBuilder(cfg, bootstrap.Options{})
			if err != nil {
				return err
			}
			a.module = module
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	a.setupFlags(root)

	root.AddCommand(
		newListCommand(a),
		newShowCommand(a),
	)

	return root
}

func (a *app) setupFlags(root *cobra.Command) {
	defaults := blog.DefaultConfig()
	flags := root.PersistentFlags()

	flags.String("config", "", "Path to a config file (defaults to ./blog.yaml when present)")
	flags.String("content-dir", "", "Read posts from this directory instead of the embedded documents")
	flags.String("engine", defaults.Frontmatter.Engine, "Frontmatter engine: lines or yaml")
	flags.Int("words-per-minute", defaults.Posts.WordsPerMinute, "Reading speed used for read time estimates")
	flags.Bool("log", defaults.Features.Logger, "Enable logging")
	flags.String("log-level", defaults.Logging.Level, "Log level: trace, debug, info, warn, error")
	flags.String("log-format", defaults.Logging.Format, "go-logger format: json, console, pretty")
	flags.String("log-provider", defaults.Logging.Provider, "Logging provider: console or gologger")

	bindings := map[string]string{
		"config":                 "config",
		"posts.content_dir":      "content-dir",
		"frontmatter.engine":     "engine",
		"posts.words_per_minute": "words-per-minute",
		"features.logger":        "log",
		"logging.level":          "log-level",
		"logging.format":         "log-format",
		"logging.provider":       "log-provider",
	}
	for key, name := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			fmt.Fprintf(a.errOut, "Warning: failed to bind %s flag: %v\n", name, err)
		}
	}
}

func (a *app) loadConfig() (blog.Config, error) {
	v := a.v
	setDefaults(v, blog.DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := strings.TrimSpace(v.GetString("config"))
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("blog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return blog.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg blog.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return blog.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg blog.Config) {
	v.SetDefault("posts.content_dir", cfg.Posts.ContentDir)
	v.SetDefault("posts.pattern", cfg.Posts.Pattern)
	v.SetDefault("posts.recursive", cfg.Posts.Recursive)
	v.SetDefault("posts.words_per_minute", cfg.Posts.WordsPerMinute)
	v.SetDefault("posts.normalize_slugs", cfg.Posts.NormalizeSlugs)
	v.SetDefault("frontmatter.engine", cfg.Frontmatter.Engine)
	v.SetDefault("outline.extensions", cfg.Outline.Extensions)
	v.SetDefault("features.external_frontmatter", cfg.Features.ExternalFrontmatter)
	v.SetDefault("features.logger", cfg.Features.Logger)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
}
