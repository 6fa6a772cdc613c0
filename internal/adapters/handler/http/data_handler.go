package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type DataHandler struct {
	svc *services.DataService
}

func NewDataHandler(svc *services.DataService) *DataHandler {
	return &DataHandler{svc: svc}
}

func (h *DataHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/search", h.Search)
	router.DELETE("/data", h.ClearAll)
}

// Search godoc
// @Summary Search habit names and mood notes
// @Tags Data
// @Produce json
// @Param q query string true "Text to look for"
// @Success 200 {object} domain.SearchResults
// @Router /search [get]
func (h *DataHandler) Search(c *gin.Context) {
	res, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *DataHandler) ClearAll(c *gin.Context) {
	if err := h.svc.ClearAll(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
