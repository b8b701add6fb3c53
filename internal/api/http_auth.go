package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bdconsulting/internal/auth"
	"bdconsulting/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// invalidCredentialsMessage 对"账号不存在"与"密码错误"返回同一文案，避免枚举
const invalidCredentialsMessage = "Invalid credentials"

func (h *HTTPHandler) Login(c *gin.Context) {
	var req entity.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, map[string]string{"email": "Valid email is required", "password": "Password is required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := req.Password
	if email == "" || password == "" {
		ValidationFailed(c, map[string]string{"email": "Valid email is required", "password": "Password is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithField("email", email).Warn("login attempt for unknown user")
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, invalidCredentialsMessage)
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		logrus.WithField("email", email).Warn("password verification failed")
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, invalidCredentialsMessage)
		return
	}

	token, _, err := h.authManager.GenerateToken(user)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		InternalError(c, "Failed to create session")
		return
	}

	c.JSON(http.StatusOK, entity.AuthLoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    entity.UserToSummary(user),
	})
}

func (h *HTTPHandler) ChangePassword(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "Authentication required")
		return
	}

	var req entity.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, map[string]string{
			"currentPassword": "Current password is required",
			"newPassword":     "New password is required",
		})
		return
	}

	if err := auth.ValidatePasswordPolicy(req.NewPassword); err != nil {
		ValidationFailed(c, map[string]string{"newPassword": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbUser, err := h.repo.GetUserByID(ctx, user.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("failed to load user for password change")
		InternalError(c, "Failed to change password")
		return
	}

	if err := auth.VerifyPassword(dbUser.PasswordHash, req.CurrentPassword); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		logrus.WithError(err).Error("failed to hash new password")
		InternalError(c, "Failed to change password")
		return
	}

	if err := h.repo.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("failed to update password")
		InternalError(c, "Failed to change password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// Verify echoes the authenticated principal.
func (h *HTTPHandler) Verify(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Token is valid",
		"user": entity.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Logout 无服务端会话，删除令牌由客户端完成
func (h *HTTPHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
