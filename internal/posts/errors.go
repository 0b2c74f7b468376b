package posts

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeCatalogFailed = "POST_CATALOG_FAILED"
	textCodeQueryInvalid  = "POST_QUERY_INVALID"
)

func wrapCatalogError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "post catalog failed").
		WithTextCode(textCodeCatalogFailed)
}

func wrapQueryError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid post query").
		WithTextCode(textCodeQueryInvalid)
}
