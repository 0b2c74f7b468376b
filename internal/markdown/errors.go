package markdown

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeParseFailed       = "FRONTMATTER_PARSE_FAILED"
	textCodeEngineUnavailable = "FRONTMATTER_ENGINE_UNAVAILABLE"
)

func wrapParseError(err error, engine string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryBadInput, fmt.Sprintf("frontmatter %s engine parse failed", engine)).
		WithTextCode(textCodeParseFailed)
}

func wrapLoadError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "frontmatter engine unavailable").
		WithTextCode(textCodeEngineUnavailable)
}
