package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ApiIndex 返回 API 总览。
func (h *HTTPHandler) ApiIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Brandenburg Data Consulting API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"auth":          "/api/auth",
			"content":       "/api/content",
			"contact":       "/api/contact",
			"admin":         "/api/admin",
			"portfolio":     "/api/portfolio",
			"blog":          "/api/blog",
			"consultations": "/api/consultations",
			"health":        "/api/health",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheck 健康检查端点。
func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Environment,
	})
}

// AuthIndex 列出认证相关端点。
func (h *HTTPHandler) AuthIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Authentication API",
		"endpoints": gin.H{
			"POST /api/auth/login":           "Login with email and password",
			"GET /api/auth/verify":           "Verify JWT token validity",
			"POST /api/auth/change-password": "Change user password (authenticated)",
			"POST /api/auth/logout":          "Logout user",
		},
	})
}

// ContentIndex 列出内容管理端点。
func (h *HTTPHandler) ContentIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Content Management API",
		"endpoints": gin.H{
			"GET /api/content/:page":                  "Get all content for a page",
			"GET /api/content/:page/:section":         "Get content for a specific section",
			"POST /api/content":                       "Create new content (Admin)",
			"PUT /api/content/:page/:section/:key":    "Update content item (Admin)",
			"DELETE /api/content/:page/:section/:key": "Delete content item (Admin)",
			"GET /api/content/all":                    "Get all content (Admin)",
			"POST /api/content/preview":               "Render a content value to sanitized HTML (Admin)",
		},
	})
}

// ContactIndex 列出联系表单端点与限流说明。
func (h *HTTPHandler) ContactIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Contact Form API",
		"endpoints": gin.H{
			"POST /api/contact": "Submit contact form",
		},
		"requiredFields": []string{"first_name", "last_name", "email", "message"},
		"rateLimits": gin.H{
			"windowMs": "15 minutes",
			"max":      3,
			"note":     "Limit of 3 submissions per 15 minutes per IP",
		},
	})
}
