package http

import (
	"net/http"

	pkgErrors "finpal-guardian/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

func (h *handler) mapError(err error) error {
	return pkgErrors.ErrInternalServerError
}
