package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logcat/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/api/dto"
)

// LevelHandler administers level overrides
type LevelHandler struct {
	store     coreport.OverrideStore
	effective coreport.OverrideSource
	logger    coreport.Logger
}

// NewLevelHandler creates a level handler. Writes go to store; reads
// report the effective override from the full source chain.
func NewLevelHandler(store coreport.OverrideStore, effective coreport.OverrideSource, logger coreport.Logger) *LevelHandler {
	return &LevelHandler{
		store:     store,
		effective: effective,
		logger:    logger,
	}
}

// GetLevel handles GET /levels/:tag
func (h *LevelHandler) GetLevel(c *gin.Context) {
	tag, err := entity.NewAppTag(c.Param("tag"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	priority, ok := h.effective.Lookup(tag)
	if !ok {
		abortWithError(c, domainerr.ErrOverrideNotFound)
		return
	}

	c.JSON(http.StatusOK, levelResponse(tag, priority))
}

// SetLevel handles PUT /levels/:tag
func (h *LevelHandler) SetLevel(c *gin.Context) {
	tag, err := entity.NewAppTag(c.Param("tag"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req dto.SetLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Body must be {\"level\": \"<LEVEL>\"}",
		})
		return
	}

	priority, err := entity.ParsePriority(req.Level)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.store.Set(tag, priority); err != nil {
		_, _ = h.logger.Errorf(LogTag, "Failed to set level override for %s: %v", tag, err)
		abortWithError(c, err)
		return
	}

	_, _ = h.logger.Infof(LogTag, "Level override for %s set to %s", tag, priority)
	c.JSON(http.StatusOK, levelResponse(tag, priority))
}

// DeleteLevel handles DELETE /levels/:tag
func (h *LevelHandler) DeleteLevel(c *gin.Context) {
	tag, err := entity.NewAppTag(c.Param("tag"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.store.Delete(tag); err != nil {
		if !domainerr.IsNotFoundError(err) {
			_, _ = h.logger.Errorf(LogTag, "Failed to delete level override for %s: %v", tag, err)
		}
		abortWithError(c, err)
		return
	}

	_, _ = h.logger.Infof(LogTag, "Level override for %s removed", tag)
	c.Status(http.StatusNoContent)
}

func levelResponse(tag string, priority entity.Priority) dto.LevelResponse {
	loggable := make(map[string]bool, len(entity.Priorities()))
	for _, p := range entity.Priorities() {
		loggable[p.Letter()] = priority.Admits(p)
	}
	return dto.LevelResponse{
		Tag:      tag,
		Level:    priority.String(),
		Loggable: loggable,
	}
}
