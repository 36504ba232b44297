package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// {"error":{"name","message","details"}} with details null when absent.
type errorResponse struct {
	Error *domain.Error `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps typed domain errors to their carried HTTP status codes.
//   - Renders router 404s and bind failures in the same envelope.
//   - Logs unexpected errors and returns them as 500 with name/message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: body})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, *domain.Error) {
	// Typed API errors carry their own status and envelope fields.
	var apiErr *domain.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status(), apiErr
	}

	// Echo's own errors: router 404/405, bind failures, echo.NewHTTPError.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		name := "Error"
		if he.Code == http.StatusNotFound {
			name = domain.NameNotFound
		}
		return he.Code, &domain.Error{Name: name, Message: fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, surface name/message per contract.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, &domain.Error{Name: "Error", Message: err.Error()}
}
