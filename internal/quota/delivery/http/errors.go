package http

import (
	"net/http"

	"smap-engine/internal/quota"
	pkgErrors "smap-engine/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")

func (h *Handler) mapError(err error) error {
	switch err {
	case quota.ErrQuotaNotFound:
		return pkgErrors.NewNotFoundHTTPError("Quota not found")
	}

	switch err.(type) {
	case *pkgErrors.ValidationError, *pkgErrors.ValidationErrorCollector, *pkgErrors.HTTPError:
		return err
	}

	// Unknown errors are caught by the recovery middleware.
	panic(err)
}
