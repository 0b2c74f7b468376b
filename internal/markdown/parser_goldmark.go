package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// OutlineExtractor walks the goldmark AST of a post body to find its first
// level-1 heading and first paragraph. It never renders HTML. The extractor
// is stateless and safe to share.
type OutlineExtractor struct {
	engine goldmark.Markdown
}

// NewOutlineExtractor builds an extractor with the named goldmark extensions.
// Unknown names are ignored; an empty list enables GFM.
func NewOutlineExtractor(extensions []string) *OutlineExtractor {
	return &OutlineExtractor{
		engine: goldmark.New(
			goldmark.WithExtensions(collectExtensions(extensions)...),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Extract returns the outline of content. Empty input yields an empty outline.
func (e *OutlineExtractor) Extract(content string) interfaces.Outline {
	var outline interfaces.Outline
	if strings.TrimSpace(content) == "" {
		return outline
	}

	source := []byte(content)
	doc := e.engine.Parser().Parse(text.NewReader(source))

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			if n.Level == 1 && outline.Heading == "" {
				outline.Heading = inlineText(n, source)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if outline.Paragraph == "" {
				outline.Paragraph = inlineText(n, source)
			}
			return ast.WalkSkipChildren, nil
		}
		if outline.Heading != "" && outline.Paragraph != "" {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return outline
}

func inlineText(node ast.Node, source []byte) string {
	var builder strings.Builder
	collectText(node, source, &builder)
	return strings.Join(strings.Fields(builder.String()), " ")
}

func collectText(node ast.Node, source []byte, builder *strings.Builder) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			builder.Write(n.Segment.Value(source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				builder.WriteByte(' ')
			}
		case *ast.String:
			builder.Write(n.Value)
		default:
			collectText(child, source, builder)
		}
	}
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
