package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type habitNameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.GET("/progress", h.Progress)
		habits.PUT("/:name", h.Rename)
		habits.DELETE("/:name", h.Delete)
		habits.POST("/:name/toggle", h.Toggle)
	}
}

// List godoc
// @Summary List habits
// @Tags Habits
// @Produce json
// @Success 200 {array} domain.Habit
// @Router /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, habits)
}

// Create godoc
// @Summary Add a habit
// @Tags Habits
// @Accept json
// @Produce json
// @Success 201 {object} domain.Habit
// @Failure 409 {object} map[string]string
// @Router /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req habitNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.Add(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func (h *HabitHandler) Rename(c *gin.Context) {
	var req habitNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.Rename(c.Request.Context(), c.Param("name"), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary Toggle a habit for a day
// @Tags Habits
// @Produce json
// @Param name path string true "Habit name"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} services.ToggleResult
// @Router /habits/{name}/toggle [post]
func (h *HabitHandler) Toggle(c *gin.Context) {
	day, err := dateQuery(c, "date")
	if err != nil {
		handleError(c, err)
		return
	}

	res, err := h.svc.Toggle(c.Request.Context(), services.ToggleHabitInput{
		Name: c.Param("name"),
		Date: day,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *HabitHandler) Progress(c *gin.Context) {
	day, err := dateQuery(c, "date")
	if err != nil {
		handleError(c, err)
		return
	}

	progress, err := h.svc.Progress(c.Request.Context(), day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
