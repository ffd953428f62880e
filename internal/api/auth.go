package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/internal/service"
	"github.com/pageza/ai-cooking-suggest/backend/internal/types"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	authService service.IAuthService
	log         *zap.Logger
}

func NewAuthHandler(authService service.IAuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeAuthError(c, "Registration failed", err)
		return
	}

	h.log.Info("User registered", zap.String("user_id", user.ID.String()), zap.String("username", user.Username))
	c.JSON(http.StatusCreated, types.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    service.ToSummary(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, types.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    service.ToSummary(user),
	})
}

func (h *AuthHandler) writeAuthError(c *gin.Context, what string, err error) {
	switch {
	case errors.Is(err, service.ErrDatabaseUnavailable):
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Database not available"})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "User already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid credentials"})
	default:
		h.log.Error(what, zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Server error"})
	}
}
