package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger(t *testing.T) {
	t.Run("logs request", func(t *testing.T) {
		buf := captureLogs(t)
		e := echo.New()
		e.Use(Logger())
		e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, buf.String(), "msg=REQUEST")
		assert.Contains(t, buf.String(), "method=GET")
		assert.Contains(t, buf.String(), "uri=/ok")
	})

	t.Run("logs errors", func(t *testing.T) {
		buf := captureLogs(t)
		e := echo.New()
		e.Use(Logger())
		e.GET("/bad", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "nope") })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Contains(t, buf.String(), "REQUEST_ERROR")
		assert.Contains(t, buf.String(), "status=418")
	})

	t.Run("skipper", func(t *testing.T) {
		buf := captureLogs(t)
		e := echo.New()
		e.Use(Logger(WithSkipper(func(c echo.Context) bool { return c.Path() == "/health" })))
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("custom logger and status levels", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(slog.NewTextHandler(&buf, nil))
		e := echo.New()
		e.Use(Logger(WithLogger(l)))
		e.GET("/runs/:id", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/42", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "route=/runs/:id")
		assert.Contains(t, buf.String(), "uri=/runs/42")
	})
}
