package markdown

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

var frontMatterPattern = regexp.MustCompile(`^---\s*\n([\s\S]*?)\n---\s*\n([\s\S]*)$`)

// LineParser is the built-in frontmatter parser. It never fails: documents
// without a frontmatter block come back as empty metadata plus the raw text.
type LineParser struct{}

var _ interfaces.FrontMatterParser = LineParser{}

// Parse satisfies interfaces.FrontMatterParser.
func (LineParser) Parse(raw string) (interfaces.ParsedDocument, error) {
	return ParseFrontMatter(raw), nil
}

// ParseFrontMatter splits raw into its `key: value` metadata block and the
// trimmed body that follows the closing delimiter.
func ParseFrontMatter(raw string) interfaces.ParsedDocument {
	block, body, ok := splitFrontMatter(raw)
	if !ok {
		return interfaces.ParsedDocument{
			Data:    map[string]string{},
			Content: raw,
		}
	}

	return interfaces.ParsedDocument{
		Data:    ScanFrontMatterLines(block),
		Content: body,
	}
}

// splitFrontMatter reports the metadata block and trimmed body of raw. The
// document must open with the delimiter on its first line and close it on a
// line of its own that is followed by a newline.
func splitFrontMatter(raw string) (block, body string, ok bool) {
	match := frontMatterPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", "", false
	}
	return match[1], strings.TrimSpace(match[2]), true
}

// ScanFrontMatterLines reads one `key: value` pair per line. Lines without a
// colon, or starting with one, are skipped. Keys lose every double quote;
// values lose one leading and one trailing quote character.
func ScanFrontMatterLines(block string) map[string]string {
	data := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		key := strings.ReplaceAll(strings.TrimSpace(line[:idx]), `"`, "")
		data[key] = unquote(strings.TrimSpace(line[idx+1:]))
	}
	return data
}

func unquote(value string) string {
	if value != "" && isQuote(value[0]) {
		value = value[1:]
	}
	if value != "" && isQuote(value[len(value)-1]) {
		value = value[:len(value)-1]
	}
	return value
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}
