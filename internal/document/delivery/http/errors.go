package http

import (
	"errors"
	"net/http"

	"finpal-guardian/internal/document"
	pkgErrors "finpal-guardian/pkg/errors"
)

var errMissingFile = pkgErrors.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrUnsupportedDocument):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, document.ErrDocumentTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, document.ErrEmptyDocument):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, document.ErrUploadsDisabled):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
