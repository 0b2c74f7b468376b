package markdown

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

const (
	// EngineLines decodes the frontmatter block with ScanFrontMatterLines.
	EngineLines = "lines"
	// EngineYAML decodes the frontmatter block as YAML and stringifies values.
	EngineYAML = "yaml"

	delimiter = "---"
)

var (
	// ErrUnknownEngine is returned when EngineConfig names an unsupported engine.
	ErrUnknownEngine = errors.New("frontmatter: unknown engine")
	// ErrEngineDisabled is returned by DisabledLoader.
	ErrEngineDisabled = errors.New("frontmatter: engine disabled")
)

// EngineConfig selects the block engine used by EngineParser.
type EngineConfig struct {
	Engine string
}

// ParserLoader resolves the frontmatter parser for a catalog query. Loaders
// run once per query; a failing loader makes the caller fall back to
// LineParser.
type ParserLoader func(ctx context.Context) (interfaces.FrontMatterParser, error)

// EngineParser parses frontmatter through github.com/adrg/frontmatter with a
// custom block engine installed on the "---" format.
type EngineParser struct {
	engine    string
	unmarshal frontmatter.UnmarshalFunc
	format    *frontmatter.Format
}

var _ interfaces.FrontMatterParser = (*EngineParser)(nil)

// NewEngineParser builds a parser for the configured engine. An empty engine
// name selects EngineLines.
func NewEngineParser(cfg EngineConfig) (*EngineParser, error) {
	engine := NormalizeEngine(cfg.Engine)
	unmarshal, ok := blockEngines[engine]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Engine)
	}
	return &EngineParser{
		engine:    engine,
		unmarshal: unmarshal,
		format:    frontmatter.NewFormat(delimiter, delimiter, unmarshal),
	}, nil
}

// Engine reports the block engine in use.
func (p *EngineParser) Engine() string {
	return p.engine
}

// Parse satisfies interfaces.FrontMatterParser. Block boundaries follow
// ParseFrontMatter, so a document the line parser leaves untouched comes back
// as empty metadata plus the raw text here too.
func (p *EngineParser) Parse(raw string) (interfaces.ParsedDocument, error) {
	block, body, ok := splitFrontMatter(raw)
	if !ok {
		return interfaces.ParsedDocument{
			Data:    map[string]string{},
			Content: raw,
		}, nil
	}

	data := map[string]string{}
	envelope := delimiter + "\n" + block + "\n" + delimiter + "\n"
	rest, err := frontmatter.Parse(strings.NewReader(envelope), &data, p.format)
	if err == nil && strings.TrimSpace(string(rest)) != "" {
		// a block line trims down to the delimiter, so decode the block directly
		data = map[string]string{}
		err = p.unmarshal([]byte(block), &data)
	}
	if err != nil {
		return interfaces.ParsedDocument{}, wrapParseError(err, p.engine)
	}

	return interfaces.ParsedDocument{
		Data:    data,
		Content: body,
	}, nil
}

// EngineLoader returns a ParserLoader that builds an EngineParser on demand.
func EngineLoader(cfg EngineConfig) ParserLoader {
	return func(ctx context.Context) (interfaces.FrontMatterParser, error) {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, wrapLoadError(err)
			}
		}
		parser, err := NewEngineParser(cfg)
		if err != nil {
			return nil, wrapLoadError(err)
		}
		return parser, nil
	}
}

// DisabledLoader always fails, forcing callers onto the built-in parser.
func DisabledLoader() ParserLoader {
	return func(context.Context) (interfaces.FrontMatterParser, error) {
		return nil, wrapLoadError(ErrEngineDisabled)
	}
}

// NormalizeEngine lower-cases and trims an engine name, defaulting to
// EngineLines.
func NormalizeEngine(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EngineLines
	}
	return name
}

// IsSupportedEngine reports whether name maps to a block engine.
func IsSupportedEngine(name string) bool {
	_, ok := blockEngines[NormalizeEngine(name)]
	return ok
}

var blockEngines = map[string]frontmatter.UnmarshalFunc{
	EngineLines: unmarshalLines,
	EngineYAML:  unmarshalYAML,
}

func unmarshalLines(block []byte, v any) error {
	target, ok := v.(*map[string]string)
	if !ok {
		return fmt.Errorf("frontmatter: unsupported target %T", v)
	}
	*target = ScanFrontMatterLines(string(block))
	return nil
}

func unmarshalYAML(block []byte, v any) error {
	target, ok := v.(*map[string]string)
	if !ok {
		return fmt.Errorf("frontmatter: unsupported target %T", v)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(block, &raw); err != nil {
		return fmt.Errorf("frontmatter yaml: %w", err)
	}

	out := make(map[string]string, len(raw))
	for key, value := range raw {
		out[key] = stringify(value)
	}
	*target = out
	return nil
}

// stringify flattens a decoded YAML value into the string form stored in post
// metadata. Lists and maps are JSON encoded.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
