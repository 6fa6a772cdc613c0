package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler {
	return &MoodHandler{svc: svc}
}

type logMoodRequest struct {
	Emoji string `json:"emoji" binding:"required"`
	Note  string `json:"note"`
}

func (h *MoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	moods := router.Group("/moods")
	{
		moods.GET("", h.List)
		moods.POST("", h.Log)
		moods.DELETE("", h.Clear)
	}
}

func (h *MoodHandler) List(c *gin.Context) {
	moods, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, moods)
}

// Log godoc
// @Summary Log a mood
// @Tags Moods
// @Accept json
// @Produce json
// @Success 201 {object} domain.MoodEntry
// @Router /moods [post]
func (h *MoodHandler) Log(c *gin.Context) {
	var req logMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.Log(c.Request.Context(), req.Emoji, req.Note)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *MoodHandler) Clear(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
