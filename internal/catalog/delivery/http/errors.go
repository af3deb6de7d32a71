package http

import (
	"errors"
	"net/http"

	"bakery-management/internal/catalog"
	pkgErrors "bakery-management/pkg/errors"
)

var errInternal = pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNegativeQuantity):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, catalog.ErrInvalidKind):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return errInternal
	}
}
