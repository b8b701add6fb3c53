package api

import (
	"strings"
	"time"

	"bdconsulting/internal/auth"
	"bdconsulting/internal/config"
	"bdconsulting/internal/mailer"
	"bdconsulting/internal/model"
	"bdconsulting/internal/storage"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storage           storage.Storage
	storagePublicBase string
	authManager       *auth.Manager
	mailer            *mailer.Mailer

	// 按端点划分的限流器
	loginLimiter        *ipRateLimiter
	contactLimiter      *ipRateLimiter
	consultationLimiter *ipRateLimiter
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, mail *mailer.Mailer) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	return &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		storage:           store,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
		authManager:       authManager,
		mailer:            mail,

		// 窗口与配额沿用原站点：登录 5 次/15 分钟，表单 3 次/15 分钟
		loginLimiter:        newIPRateLimiter(5, 15*time.Minute),
		contactLimiter:      newIPRateLimiter(3, 15*time.Minute),
		consultationLimiter: newIPRateLimiter(3, 15*time.Minute),
	}, nil
}

// normalisePublicBase 规范化公共 URL 基础路径
func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/uploads"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}
