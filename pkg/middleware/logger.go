package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type loggerOptions struct {
	logger  *slog.Logger
	skipper middleware.Skipper
}

type LoggerOpts func(*loggerOptions)

// WithSkipper excludes requests such as health probes from the log.
func WithSkipper(skipper middleware.Skipper) LoggerOpts {
	return func(o *loggerOptions) {
		o.skipper = skipper
	}
}

// WithLogger logs through l instead of slog.Default().
func WithLogger(l *slog.Logger) LoggerOpts {
	return func(o *loggerOptions) {
		o.logger = l
	}
}

// Logger logs one line per request. Requests that fail or end with a 5xx are
// logged at error level, 4xx at warn.
func Logger(opts ...LoggerOpts) echo.MiddlewareFunc {
	o := loggerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper:      o.skipper,
		LogStatus:    true,
		LogLatency:   true,
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l := o.logger
			if l == nil {
				l = slog.Default()
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			msg, level := "REQUEST", slog.LevelInfo
			switch {
			case v.Error != nil:
				msg, level = "REQUEST_ERROR", slog.LevelError
				attrs = append(attrs, slog.String("err", v.Error.Error()))
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			l.LogAttrs(c.Request().Context(), level, msg, attrs...)
			return nil
		},
	})
}
