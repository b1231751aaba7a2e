package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the JSON body written for every failed request.
type Response struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

// Classify maps err to an HTTP status and the body the client sees. Errors
// that are not one of the package's types, or an echo.HTTPError, become an
// opaque 500.
func Classify(err error) (int, Response) {
	var (
		ve *ValidationError
		nf *NotFoundError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, Response{Error: ve.Error(), Title: "validation error"}
	case errors.As(err, &nf):
		return http.StatusNotFound, Response{Error: nf.Error(), Title: "not found"}
	case errors.As(err, &he):
		return he.Code, Response{Error: fmt.Sprint(he.Message)}
	default:
		return http.StatusInternalServerError, Response{Error: "internal server error"}
	}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := Classify(err)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request().Context(), "Unhandled error",
				"error", err, "method", c.Request().Method, "uri", c.Request().RequestURI)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
