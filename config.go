package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrWordsPerMinuteInvalid    = runtimeconfig.ErrWordsPerMinuteInvalid
	ErrFrontmatterEngineUnknown = runtimeconfig.ErrFrontmatterEngineUnknown
	ErrPostsPatternInvalid      = runtimeconfig.ErrPostsPatternInvalid
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	PostsConfig       = runtimeconfig.PostsConfig
	FrontmatterConfig = runtimeconfig.FrontmatterConfig
	OutlineConfig     = runtimeconfig.OutlineConfig
	Features          = runtimeconfig.Features
	LoggingConfig     = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
