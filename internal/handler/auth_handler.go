package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/academico/school-management-api/internal/models"
	appErrors "github.com/academico/school-management-api/pkg/errors"
	"github.com/academico/school-management-api/pkg/response"
)

type loginService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler wires the authentication flow to HTTP routes.
type AuthHandler struct {
	auth loginService
}

// NewAuthHandler constructs a new AuthHandler.
func NewAuthHandler(auth loginService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Authenticate a usuario
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrInvalidCredentials)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, resp)
}
