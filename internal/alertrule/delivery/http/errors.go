package http

import (
	"net/http"

	"smap-engine/internal/alertrule"
	pkgErrors "smap-engine/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case alertrule.ErrRuleNotFound:
		return pkgErrors.NewNotFoundHTTPError("Alert rule not found")
	case alertrule.ErrEventNotFound:
		return pkgErrors.NewNotFoundHTTPError("Alert event not found")
	case alertrule.ErrInvalidRuleType:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid rule type")
	case alertrule.ErrInvalidConditions:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid rule conditions")
	case alertrule.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid event status")
	case alertrule.ErrEventNotPending:
		return pkgErrors.NewHTTPError(http.StatusConflict, "Alert event is not pending")
	}

	switch err.(type) {
	case *pkgErrors.ValidationError, *pkgErrors.ValidationErrorCollector, *pkgErrors.HTTPError:
		return err
	}

	// Unknown errors are caught by the recovery middleware.
	panic(err)
}
