package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/constants"
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/service"
	"github.com/hostel-system/hostel-management/pkg/utils"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /register. Registering a tenant also creates the
// linked tenant profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			utils.Error(c, utils.ErrCodeValidationFailed, "email already exists")
		case errors.Is(err, service.ErrInvalidRole):
			utils.Error(c, utils.ErrCodeValidationFailed, "role must be admin or tenant")
		default:
			utils.Error(c, utils.ErrCodeInternalError, "registration failed: %v", err)
		}
		return
	}

	utils.Success(c, http.StatusOK, user)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.Error(c, utils.ErrCodeValidationFailed, "Invalid credentials")
			return
		}
		utils.Error(c, utils.ErrCodeInternalError, "login failed: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, resp)
}

// Profile handles GET /profile for the authenticated user.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.Error(c, utils.ErrCodeUnauthorized, "not authenticated")
		return
	}

	user, err := h.authService.ValidateUser(userID.(string))
	if err != nil {
		utils.Error(c, utils.ErrCodeNotFound, "user not found")
		return
	}

	utils.Success(c, http.StatusOK, user)
}
