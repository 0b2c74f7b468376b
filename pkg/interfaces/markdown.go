package interfaces

import "context"

// FrontMatterParser splits a raw markdown document into its metadata block and
// body. Implementations may be backed by a third-party engine or by the
// built-in line scanner; the catalog picks one per query.
type FrontMatterParser interface {
	// Parse returns the metadata and trimmed body of raw. Documents without a
	// frontmatter block yield empty metadata and the raw text as content.
	Parse(raw string) (ParsedDocument, error)
}

// FrontMatterParserFunc adapts a plain function to FrontMatterParser.
type FrontMatterParserFunc func(raw string) (ParsedDocument, error)

// Parse satisfies FrontMatterParser.
func (fn FrontMatterParserFunc) Parse(raw string) (ParsedDocument, error) {
	return fn(raw)
}

// ParsedDocument is the result of splitting a document.
type ParsedDocument struct {
	Data    map[string]string
	Content string
}

// SourceDocument is a raw markdown document keyed by a path-like identifier
// such as "blog/design_patterns/builder.md".
type SourceDocument struct {
	ID  string
	Raw string
}

// DocumentSource enumerates the documents a catalog is built from. Sources are
// expected to return documents in a deterministic order.
type DocumentSource interface {
	Documents(ctx context.Context) ([]SourceDocument, error)
}
