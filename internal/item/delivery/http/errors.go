package http

import (
	"context"
	"errors"
	"net/http"

	"library-catalog/internal/item"
	pkgErrors "library-catalog/pkg/errors"
	"library-catalog/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors carrying
// machine-readable codes. Unknown errors pass through and are rendered as an
// opaque 500 by the response layer.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewCodedHTTPError(http.StatusNotFound, "ITEM_NOT_FOUND", "item not found")
	case errors.Is(err, item.ErrItemAlreadyExists):
		return pkgErrors.NewCodedHTTPError(http.StatusConflict, "ITEM_ALREADY_EXISTS", "an item with this ISBN already exists")
	case errors.Is(err, item.ErrISBNAlreadyExists):
		return pkgErrors.NewCodedHTTPError(http.StatusConflict, "ISBN_ALREADY_EXISTS", "another item already uses this ISBN")
	case errors.Is(err, item.ErrCannotDeleteCheckedOut):
		return pkgErrors.NewCodedHTTPError(http.StatusConflict, "CANNOT_DELETE_CHECKED_OUT", "cannot delete an item that is checked out")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewCodedHTTPError(response.RequestCancelledCode, "REQUEST_CANCELLED", "request cancelled")
	default:
		return err
	}
}
