package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"bdconsulting/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 上传大小上限 10MB，站点媒体足够用
const maxUploadBytes = 10 << 20

var allowedUploadExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
	"svg":  true,
	"pdf":  true,
}

var allowedUploadCategories = map[string]bool{
	"blog":         true,
	"portfolio":    true,
	"testimonials": true,
	"content":      true,
	"misc":         true,
}

func (h *HTTPHandler) publicURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	base := h.storagePublicBase
	if base == "" {
		base = "/uploads"
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(trimmed, "/"))
}

// UploadMedia 接收管理端上传的媒体文件并写入配置的存储后端。
func (h *HTTPHandler) UploadMedia(c *gin.Context) {
	if h.storage == nil {
		InternalError(c, "Storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "A file field is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		BadRequest(c, ErrCodeValidation, "File exceeds the 10MB upload limit")
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !allowedUploadExtensions[ext] {
		BadRequest(c, ErrCodeValidation, "Unsupported file type")
		return
	}

	category := strings.ToLower(strings.TrimSpace(c.PostForm("category")))
	if category == "" {
		category = "misc"
	}
	if !allowedUploadCategories[category] {
		BadRequest(c, ErrCodeValidation, "Invalid upload category")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open uploaded file")
		InternalError(c, "Failed to read uploaded file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		logrus.WithError(err).Error("failed to read uploaded file")
		InternalError(c, "Failed to read uploaded file")
		return
	}
	if len(data) > maxUploadBytes {
		BadRequest(c, ErrCodeValidation, "File exceeds the 10MB upload limit")
		return
	}

	// 同名文件加纳秒时间戳，避免同日上传相互覆盖
	base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), filepath.Ext(fileHeader.Filename))
	base = fmt.Sprintf("%s-%d", base, time.Now().UnixNano())
	relPath, err := h.storage.Save(c.Request.Context(), data, storage.SaveOptions{
		Category:  category,
		Extension: ext,
		BaseName:  base,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to store uploaded file")
		InternalError(c, "Failed to store uploaded file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": relPath,
		"url":  h.publicURL(relPath),
	})
}
