package posts

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// StaticSource is a fixed, ordered table of documents.
type StaticSource []interfaces.SourceDocument

var _ interfaces.DocumentSource = StaticSource(nil)

// Documents returns a copy of the table.
func (s StaticSource) Documents(ctx context.Context) ([]interfaces.SourceDocument, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	out := make([]interfaces.SourceDocument, len(s))
	copy(out, s)
	return out, nil
}

// FSSource reads markdown documents from a filesystem.
type FSSource struct {
	loader *markdown.Loader
}

var _ interfaces.DocumentSource = (*FSSource)(nil)

// NewFSSource walks filesystem using cfg on every call to Documents.
func NewFSSource(filesystem fs.FS, cfg markdown.LoaderConfig) *FSSource {
	return &FSSource{loader: markdown.NewLoader(filesystem, cfg)}
}

// Documents satisfies interfaces.DocumentSource.
func (s *FSSource) Documents(ctx context.Context) ([]interfaces.SourceDocument, error) {
	return s.loader.Documents(ctx)
}
