package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// LoaderConfig configures how markdown files are discovered within a filesystem.
type LoaderConfig struct {
	// Root is the directory inside the filesystem to start from (defaults to ".").
	Root string
	// Pattern limits discovered files to those matching the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns filesystem entries into raw source documents.
type Loader struct {
	fs        fs.FS
	root      string
	pattern   string
	recursive bool
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	root := strings.TrimSpace(cfg.Root)
	if root == "" {
		root = "."
	}

	return &Loader{
		fs:        filesystem,
		root:      path.Clean(root),
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads a single document. The identifier is the slash-separated
// path inside the filesystem.
func (l *Loader) LoadFile(ctx context.Context, name string) (interfaces.SourceDocument, error) {
	ctx = orBackground(ctx)
	select {
	case <-ctx.Done():
		return interfaces.SourceDocument{}, ctx.Err()
	default:
	}

	name = path.Clean(strings.TrimPrefix(name, "/"))
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return interfaces.SourceDocument{}, fmt.Errorf("markdown loader read %s: %w", name, err)
	}

	return interfaces.SourceDocument{
		ID:  name,
		Raw: string(data),
	}, nil
}

// Documents discovers every matching file under the configured root, sorted
// by identifier.
func (l *Loader) Documents(ctx context.Context) ([]interfaces.SourceDocument, error) {
	ctx = orBackground(ctx)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var results []interfaces.SourceDocument

	walkErr := fs.WalkDir(l.fs, l.root, func(current string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if !l.recursive && current != l.root {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if !l.matchesPattern(current) {
			return nil
		}

		doc, err := l.LoadFile(ctx, current)
		if err != nil {
			return err
		}
		results = append(results, doc)
		return nil
	})

	if walkErr != nil {
		return nil, fmt.Errorf("markdown loader walk %s: %w", l.root, walkErr)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	return results, nil
}

func (l *Loader) matchesPattern(name string) bool {
	pattern := l.pattern
	if strings.Contains(pattern, "**") {
		// Basic support for ** by stripping repeated separators.
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	target := path.Base(name)
	if strings.Contains(pattern, "/") {
		target = name
	}
	match, err := path.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
