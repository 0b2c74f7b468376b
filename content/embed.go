// Package content bundles the blog's markdown documents at build time and
// exposes the slug helpers shared by the catalog.
package content

import (
	"embed"
	"io/fs"
)

// Root is the directory inside FS that holds the posts.
const Root = "blog"

//go:embed blog
var documents embed.FS

// FS returns the embedded, read-only document tree. Identifiers are paths such
// as "blog/design_patterns/builder.md".
func FS() fs.FS {
	return documents
}
