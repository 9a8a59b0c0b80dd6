package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/logcat/internal/domain/error"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/dto"
)

// LogTag is the component tag the admin API logs under
const LogTag = "http"

// statusOf maps a domain error to its HTTP status
func statusOf(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidTag),
		errors.Is(err, domainerr.ErrInvalidPriority),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrOverrideNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDiagnosticsUnavailable):
		return http.StatusNotImplemented
	case errors.Is(err, domainerr.ErrNotInitialized),
		errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusOf(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
