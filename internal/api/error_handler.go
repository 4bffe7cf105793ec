package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// errorResponse is the canonical error envelope for errors that escape the
// handlers' own mapping.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Passes Echo's own errors (bind failures, 404 from the router, auth
//     middleware rejections) through with their status codes.
//   - Logs unexpected errors internally without leaking details to the
//     client.
//   - Renders the same JSON envelope the handlers use: {"message": "…"}.
//
// Domain errors are mapped per endpoint inside the handlers because the
// contract pins different messages for the same failure class; anything
// reaching this handler is either transport-level or unexpected.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}
