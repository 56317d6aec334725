package handlers

import (
	"errors"
	"net/http"

	"gharseva/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler covers registration, login, and profile access.
type UserHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	resp, err := h.UserSvc.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered", "message": err.Error()})
		case errors.Is(err, user.ErrInvalidReferral):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid referral code", "message": err.Error()})
		default:
			h.Logger.Error("Register: failed to create account", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register", "message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	resp, err := h.UserSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.Logger.Error("Login: authentication error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /api/users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	u, err := h.UserSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("GetProfile: failed to fetch user", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

type fcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// UpdateFCMToken handles PUT /api/users/me/fcm-token.
func (h *UserHandler) UpdateFCMToken(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.UserSvc.UpdateFCMToken(c.Request.Context(), userID, req.Token); err != nil {
		h.Logger.Error("UpdateFCMToken: failed to store token", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update token", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
