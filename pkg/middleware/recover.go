package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/logger"
	"github.com/isipark/siteapi/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and returns a 500 to the client. A request failure never takes the
// process down with it.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(stack),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Fail(w, apperr.Query("Internal server error", fmt.Errorf("panic: %v", err)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
