package handlers

import (
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/middleware"
	"github.com/dawar-shafaque/restaurant-application/services/auth"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes login, signup, logout and password change.
type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}
	result, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header(middleware.SessionHeader, result.SessionID)
	c.JSON(http.StatusOK, result)
}

// SignupHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid signup payload", err.Error())
		return
	}
	msg, err := h.Service.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// LogoutHandler handles POST /api/auth/logout. After it returns, the session
// is gone and protected routes redirect to login again.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	id, ok := middleware.SessionIDFrom(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}
	if err := h.Service.Logout(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Logout failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/login"})
}

// ChangePasswordHandler handles PUT /api/users/password.
func (h *AuthHandler) ChangePasswordHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	var req auth.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid password payload", err.Error())
		return
	}
	msg, err := h.Service.ChangePassword(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
