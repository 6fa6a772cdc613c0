package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type WellnessHandler struct {
	svc *services.WellnessService
}

func NewWellnessHandler(svc *services.WellnessService) *WellnessHandler {
	return &WellnessHandler{svc: svc}
}

// addWaterRequest takes either glasses or millilitres; millilitres win when
// both are set.
type addWaterRequest struct {
	Glasses     int `json:"glasses"`
	Millilitres int `json:"millilitres"`
}

type waterGoalRequest struct {
	Glasses int `json:"glasses" binding:"required"`
}

type recordSessionRequest struct {
	Type      string     `json:"type" binding:"required"`
	Minutes   int        `json:"minutes" binding:"required"`
	Start     *time.Time `json:"start"`
	Completed *bool      `json:"completed"`
}

func (h *WellnessHandler) RegisterRoutes(router *gin.RouterGroup) {
	water := router.Group("/water")
	{
		water.GET("", h.Hydration)
		water.POST("", h.AddWater)
		water.DELETE("/glass", h.RemoveGlass)
		water.PUT("/goal", h.SetGoal)
	}

	meditation := router.Group("/meditation")
	{
		meditation.GET("/sessions", h.Sessions)
		meditation.POST("/sessions", h.RecordSession)
		meditation.GET("/summary", h.MeditationSummary)
	}
}

func (h *WellnessHandler) Hydration(c *gin.Context) {
	day, err := dateQuery(c, "date")
	if err != nil {
		handleError(c, err)
		return
	}
	hydration, err := h.svc.Hydration(c.Request.Context(), day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, hydration)
}

// AddWater godoc
// @Summary Log water intake for today
// @Tags Water
// @Accept json
// @Produce json
// @Success 200 {object} domain.Hydration
// @Router /water [post]
func (h *WellnessHandler) AddWater(c *gin.Context) {
	var req addWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		hydration domain.Hydration
		err       error
	)
	if req.Millilitres > 0 {
		hydration, err = h.svc.AddMillilitres(ctx, req.Millilitres)
	} else {
		hydration, err = h.svc.AddGlasses(ctx, req.Glasses)
	}
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, hydration)
}

func (h *WellnessHandler) RemoveGlass(c *gin.Context) {
	hydration, err := h.svc.RemoveGlass(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, hydration)
}

func (h *WellnessHandler) SetGoal(c *gin.Context) {
	var req waterGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.SetDailyGoal(c.Request.Context(), req.Glasses); err != nil {
		handleError(c, err)
		return
	}

	hydration, err := h.svc.Hydration(c.Request.Context(), noDate)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, hydration)
}

func (h *WellnessHandler) Sessions(c *gin.Context) {
	sessions, err := h.svc.Sessions(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// RecordSession godoc
// @Summary Record a meditation session
// @Tags Meditation
// @Accept json
// @Produce json
// @Success 201 {object} domain.MeditationSession
// @Router /meditation/sessions [post]
func (h *WellnessHandler) RecordSession(c *gin.Context) {
	var req recordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.RecordSessionInput{
		Type:      req.Type,
		Minutes:   req.Minutes,
		Completed: true,
	}
	if req.Start != nil {
		input.Start = *req.Start
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}

	session, err := h.svc.RecordSession(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *WellnessHandler) MeditationSummary(c *gin.Context) {
	day, err := dateQuery(c, "date")
	if err != nil {
		handleError(c, err)
		return
	}
	summary, err := h.svc.MeditationSummary(c.Request.Context(), day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
