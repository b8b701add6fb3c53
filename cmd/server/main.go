package main

import (
	"bdconsulting/internal/api"
	"bdconsulting/internal/config"
	"bdconsulting/internal/mailer"
	"bdconsulting/internal/model"
	"bdconsulting/internal/storage"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 初始化配置
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	// 初始化logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	if repo != nil {
		if err := model.SeedDefaults(context.Background(), repo, cfg); err != nil {
			logrus.WithError(err).Warn("failed to seed default data")
		}
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	mail := mailer.New(cfg)
	if !mail.Enabled() {
		logger.Info("SMTP credentials absent, email notifications disabled")
	}

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store, mail)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// 添加中间件
	r.Use(api.RequestIDMiddleware())
	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware(cfg.CORSOrigins))
	r.Use(gin.Recovery())

	apiGroup := r.Group("/api")
	apiGroup.Use(api.GlobalRateLimit())
	apiGroup.GET("", httpHandler.ApiIndex)
	apiGroup.GET("/health", httpHandler.HealthCheck)

	authGroup := apiGroup.Group("/auth")
	authGroup.GET("", httpHandler.AuthIndex)
	authGroup.POST("/login", httpHandler.LoginRateLimit(), httpHandler.Login)
	authGroup.GET("/verify", httpHandler.AuthMiddleware(), httpHandler.Verify)
	authGroup.POST("/change-password", httpHandler.AuthMiddleware(), httpHandler.ChangePassword)
	authGroup.POST("/logout", httpHandler.Logout)

	contentGroup := apiGroup.Group("/content")
	contentGroup.GET("", httpHandler.ContentIndex)
	contentGroup.GET("/all", httpHandler.AuthMiddleware(), httpHandler.RequireAdmin(), httpHandler.ListAllContent)
	contentGroup.GET("/:page", httpHandler.GetPageContent)
	contentGroup.GET("/:page/:section", httpHandler.GetSectionContent)
	contentGroup.POST("", httpHandler.AuthMiddleware(), httpHandler.RequireAdmin(), httpHandler.UpsertContent)
	contentGroup.POST("/preview", httpHandler.AuthMiddleware(), httpHandler.RequireAdmin(), httpHandler.PreviewContent)
	contentGroup.PUT("/:page/:section/:key", httpHandler.AuthMiddleware(), httpHandler.RequireAdmin(), httpHandler.UpdateContent)
	contentGroup.DELETE("/:page/:section/:key", httpHandler.AuthMiddleware(), httpHandler.RequireAdmin(), httpHandler.DeleteContent)

	contactGroup := apiGroup.Group("/contact")
	contactGroup.GET("", httpHandler.ContactIndex)
	contactGroup.POST("", httpHandler.ContactRateLimit(), httpHandler.SubmitContact)

	apiGroup.POST("/consultations", httpHandler.ConsultationRateLimit(), httpHandler.SubmitConsultation)

	blogGroup := apiGroup.Group("/blog")
	blogGroup.GET("", httpHandler.ListPublishedPosts)
	blogGroup.GET("/:slug", httpHandler.GetPublishedPost)

	portfolioGroup := apiGroup.Group("/portfolio")
	portfolioGroup.GET("", httpHandler.ListPublishedPortfolio)
	portfolioGroup.GET("/:slug", httpHandler.GetPublishedPortfolio)

	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(httpHandler.AuthMiddleware(), httpHandler.RequireAdmin())
	adminGroup.GET("", httpHandler.AdminIndex)
	adminGroup.GET("/dashboard", httpHandler.Dashboard)
	adminGroup.GET("/messages", httpHandler.ListMessages)
	adminGroup.PUT("/messages/:id/status", httpHandler.UpdateMessageStatus)
	adminGroup.GET("/blog", httpHandler.ListAdminPosts)
	adminGroup.GET("/portfolio", httpHandler.ListAdminPortfolio)
	adminGroup.GET("/testimonials", httpHandler.ListAdminTestimonials)
	adminGroup.POST("/uploads", httpHandler.UploadMedia)

	// 本地存储的文件直接由服务静态提供
	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok {
		publicPrefix := strings.TrimSpace(cfg.StoragePublicBaseURL)
		if publicPrefix == "" {
			publicPrefix = "/uploads"
		}
		if !strings.HasPrefix(publicPrefix, "http://") && !strings.HasPrefix(publicPrefix, "https://") {
			if !strings.HasPrefix(publicPrefix, "/") {
				publicPrefix = "/" + publicPrefix
			}
			r.Static(publicPrefix, localProvider.LocalBaseDir())
		}
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logger.WithField("host", serverHost).Info("服务器启动")
	// 创建HTTP服务器
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("服务器启动失败")
	}
}

// CORSMiddleware CORS跨域中间件
func CORSMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			allowed[trimmed] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowed[origin] || allowed["*"]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware 日志记录中间件
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// 处理请求
		c.Next()
		// 记录请求结束
		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration.String(),
			"size":       c.Writer.Size(),
			"client_ip":  c.ClientIP(),
			"request_id": api.RequestID(c),
		}).Info("http_request")
	}
}
