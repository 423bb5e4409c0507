package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

const stackSize = 8 << 10

// Recovery converts a handler panic into the remote API's error body so
// clients under test see an ordinary 500 failure envelope. The stack is
// logged together with the matched route and the request ID set by
// RequestLog, when present.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				stack := make([]byte, stackSize)
				stack = stack[:runtime.Stack(stack, false)]

				attrs := []any{
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"route", c.Path(),
				}
				if id, ok := c.Get("request_id").(string); ok {
					attrs = append(attrs, "request_id", id)
				}
				log.Error("mock handler panicked", append(attrs, "stack", string(stack))...)

				err = c.JSON(http.StatusInternalServerError, map[string]any{
					"exception": "InternalServerError",
					"message":   "internal server error",
				})
			}()
			return next(c)
		}
	}
}
