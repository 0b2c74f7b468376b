// Package markdown holds the document-level building blocks of the blog
// catalog: the built-in frontmatter line parser, the adrg/frontmatter backed
// engine parser and its loader, read-time estimation, goldmark outline
// extraction, and filesystem discovery of markdown sources.
package markdown
