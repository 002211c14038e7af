package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/skill-swap/internal/config"
)

// Cache returns a middleware that stores successful GET responses in
// Redis for the configured TTL. It is applied only to the calendar
// routes, which are pure reads over small data; mutating routes are
// never wrapped. Cached responses are not invalidated when a session
// is scheduled, so an enabled cache can serve a grid up to one TTL
// old. With caching disabled or no Redis client the middleware is a
// pass-through, and Redis failures fail open.
func Cache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cfg.Prefix + ":" + c.Request().URL.RequestURI()
			ctx := c.Request().Context()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			// Capture the response body while still streaming it to
			// the client.
			rec := &recordingWriter{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status == http.StatusOK {
				_ = rdb.Set(ctx, key, rec.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}

type recordingWriter struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}
