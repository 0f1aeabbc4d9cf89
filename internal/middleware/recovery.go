package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a panicking handler into a 500 and logs the stack with the
// request id, so a client report can be matched to the log line.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "handler panicked",
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("route", c.FullPath()),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorBody)
		}()

		c.Next()
	}
}

var internalErrorBody = ginext.H{"error": "internal server error"}
