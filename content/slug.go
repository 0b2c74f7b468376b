package content

import "github.com/goliatone/go-slug"

// NormalizeSlug turns a file name such as "factory_method" into a URL-safe
// slug using the default rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
