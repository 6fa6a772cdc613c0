package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type setPINRequest struct {
	Current string `json:"current"`
	PIN     string `json:"pin" binding:"required"`
}

type removePINRequest struct {
	Current string `json:"current" binding:"required"`
}

type tokenRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/pin", h.PINStatus)
		authGroup.POST("/pin", h.SetPIN)
		authGroup.DELETE("/pin", h.RemovePIN)
		authGroup.POST("/token", h.Token)
	}
}

func (h *AuthHandler) PINStatus(c *gin.Context) {
	set, err := h.service.HasPIN(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pin_set": set})
}

// SetPIN godoc
// @Summary Set or change the app PIN
// @Tags Auth
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/pin [post]
func (h *AuthHandler) SetPIN(c *gin.Context) {
	var req setPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.SetPIN(c.Request.Context(), services.SetPINInput{
		Current: req.Current,
		PIN:     req.PIN,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) RemovePIN(c *gin.Context) {
	var req removePINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.RemovePIN(c.Request.Context(), req.Current); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Token godoc
// @Summary Exchange the app PIN for a device token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} tokenResponse
// @Failure 401 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.PIN)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}
