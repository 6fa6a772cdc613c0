package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type createGoalRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TargetDays  int    `json:"target_days"`
}

type advanceGoalResponse struct {
	Goal      *domain.Goal `json:"goal"`
	Completed bool         `json:"completed"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.POST("", h.Create)
		goals.POST("/:id/advance", h.Advance)
		goals.DELETE("/:id", h.Delete)
	}

	challenges := router.Group("/challenges")
	{
		challenges.GET("", h.Challenges)
		challenges.POST("/:id/join", h.Join)
	}
}

func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), services.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDays:  req.TargetDays,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// Advance godoc
// @Summary Record one day of progress on a goal
// @Tags Goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} advanceGoalResponse
// @Failure 404 {object} map[string]string
// @Router /goals/{id}/advance [post]
func (h *GoalHandler) Advance(c *gin.Context) {
	goal, completed, err := h.svc.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, advanceGoalResponse{Goal: goal, Completed: completed})
}

func (h *GoalHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) Challenges(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Challenges())
}

func (h *GoalHandler) Join(c *gin.Context) {
	goal, err := h.svc.Join(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}
