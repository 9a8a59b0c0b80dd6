package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logcat/internal/domain/error"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/dto"
)

// Dumper is the diagnostic surface of the façade
type Dumper interface {
	AppTag() (string, error)
	PrintCurrentStackTrace(tag string, priority entity.Priority) (int, error)
	PrintCurrentThreads(tag string, priority entity.Priority) (int, error)
	PrintMemoryInfo(priority entity.Priority) (int, error)
}

// DiagnosticsHandler runs the dumpers on request
type DiagnosticsHandler struct {
	dumper Dumper
}

// NewDiagnosticsHandler creates a diagnostics handler
func NewDiagnosticsHandler(dumper Dumper) *DiagnosticsHandler {
	return &DiagnosticsHandler{dumper: dumper}
}

// Health handles GET /health
func (h *DiagnosticsHandler) Health(c *gin.Context) {
	appTag, err := h.dumper.AppTag()
	if err != nil {
		c.JSON(statusOf(err), dto.HealthResponse{Status: "uninitialized"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", AppTag: appTag})
}

// Stack handles POST /diagnostics/stack
func (h *DiagnosticsHandler) Stack(c *gin.Context) {
	h.run(c, h.dumper.PrintCurrentStackTrace)
}

// Threads handles POST /diagnostics/threads
func (h *DiagnosticsHandler) Threads(c *gin.Context) {
	h.run(c, h.dumper.PrintCurrentThreads)
}

// Memory handles POST /diagnostics/memory. The tag parameter is ignored,
// memory reports go out under the app tag alone.
func (h *DiagnosticsHandler) Memory(c *gin.Context) {
	h.run(c, func(_ string, p entity.Priority) (int, error) {
		return h.dumper.PrintMemoryInfo(p)
	})
}

// run parses ?priority= (default DEBUG) and ?tag= and reports the result
func (h *DiagnosticsHandler) run(c *gin.Context, dump func(tag string, p entity.Priority) (int, error)) {
	priority, err := entity.ParsePriority(c.DefaultQuery("priority", entity.Debug.String()))
	if err == nil && !priority.IsValid() {
		err = &domainerr.PriorityError{Value: priority.String()}
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	n, err := dump(c.DefaultQuery("tag", "Diagnostics"), priority)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DiagnosticsResponse{Bytes: max(n, 0), Denied: n < 0})
}
