package middleware

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

// Logger logs every request once it has been handled
func Logger(logger coreport.Logger, clock coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := clock.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		latency := clock.Since(start).Std()

		if len(c.Errors) > 0 {
			_, _ = logger.Warnf(LogTag, "%s %s %d %s %s [%s] %s", method, path, status, statusText(status), latency, GetRequestID(c), c.Errors.String())
			return
		}
		_, _ = logger.Infof(LogTag, "%s %s %d %s %s [%s]", method, path, status, statusText(status), latency, GetRequestID(c))
	}
}

// statusText returns the class of the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
