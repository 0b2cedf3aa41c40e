package telegram

import (
	"net/http"

	pkgErrors "finpal-guardian/pkg/errors"
)

var errBadSecret = pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid webhook secret")

const msgProcessingFailed = "Sorry, something went wrong while checking your message. Please try again."
