package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logcat/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/dto"
)

// LogTag is the component tag requests are logged under
const LogTag = "http"

// StackPrinter dumps the calling goroutine's stack
type StackPrinter interface {
	PrintCurrentStackTrace(tag string, priority entity.Priority) (int, error)
}

// Recovery recovers from panics, logs them at ERROR followed by the
// panicking stack, and answers 500. stacks may be nil.
func Recovery(logger coreport.Logger, stacks StackPrinter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				_, _ = logger.Errorf(LogTag, "Panic recovered in %s %s [%s]: %v",
					c.Request.Method, c.Request.URL.Path, GetRequestID(c), err)
				if stacks != nil {
					_, _ = stacks.PrintCurrentStackTrace(LogTag, entity.Error)
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
