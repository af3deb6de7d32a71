package http

import (
	"errors"
	"net/http"

	"bakery-management/internal/view"
	pkgErrors "bakery-management/pkg/errors"
)

var (
	errUnknownItem = pkgErrors.NewHTTPError(http.StatusBadRequest, "item is not in the selector")
	errInternal    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// mapError translates view and handler errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, view.ErrInvalidPurchaseQuantity):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, view.ErrRowNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return errInternal
	}
}
