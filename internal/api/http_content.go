package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"bdconsulting/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GetPageContent 返回一个页面的全部内容，聚合为 section→key→value。
// 空页面返回空对象而非 404。
func (h *HTTPHandler) GetPageContent(c *gin.Context) {
	page := c.Param("page")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.ListContentByPage(ctx, page)
	if err != nil {
		logrus.WithError(err).WithField("page", page).Error("failed to fetch page content")
		InternalError(c, "Failed to fetch content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    page,
		"content": entity.GroupContentByPage(items),
	})
}

// GetSectionContent 返回一个小节的内容，聚合为 key→value。
func (h *HTTPHandler) GetSectionContent(c *gin.Context) {
	page := c.Param("page")
	section := c.Param("section")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.ListContentBySection(ctx, page, section)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"page": page, "section": section}).
			Error("failed to fetch section content")
		InternalError(c, "Failed to fetch section content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    page,
		"section": section,
		"content": entity.GroupContentBySection(items),
	})
}

// ListAllContent 管理端内容总览，按 (page, section, key) 排序。
func (h *HTTPHandler) ListAllContent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.ListAllContent(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch all content")
		InternalError(c, "Failed to fetch content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": items,
		"total":   len(items),
	})
}

// UpsertContent 创建或替换内容项，依赖唯一索引上的原子 upsert。
func (h *HTTPHandler) UpsertContent(c *gin.Context) {
	var req entity.ContentUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, map[string]string{
			"page":    "Page is required",
			"section": "Section is required",
			"key":     "Key is required",
			"value":   "Value is required",
		})
		return
	}

	// 三元组写入前修剪空白，入库键与读取端的匹配规则一致
	req.Page = strings.TrimSpace(req.Page)
	req.Section = strings.TrimSpace(req.Section)
	req.Key = strings.TrimSpace(req.Key)
	if req.Page == "" || req.Section == "" || req.Key == "" {
		ValidationFailed(c, map[string]string{
			"page":    "Page is required",
			"section": "Section is required",
			"key":     "Key is required",
		})
		return
	}

	if req.Type == "" {
		req.Type = entity.ContentTypeText
	}
	if !entity.ValidContentType(req.Type) {
		ValidationFailed(c, map[string]string{"type": "Invalid content type"})
		return
	}
	// html 值入库前就净化，公共读取端无需再处理
	if req.Type == entity.ContentTypeHTML {
		req.Value = htmlSanitizer.Sanitize(req.Value)
	}

	item := &entity.DbContent{
		Page:    req.Page,
		Section: req.Section,
		Key:     req.Key,
		Value:   req.Value,
		Type:    req.Type,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpsertContent(ctx, item); err != nil {
		logrus.WithError(err).Error("failed to save content")
		InternalError(c, "Failed to save content")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Content saved successfully",
		"data": gin.H{
			"page":    req.Page,
			"section": req.Section,
			"key":     req.Key,
			"value":   req.Value,
			"type":    req.Type,
		},
	})
}

// UpdateContent 严格更新：三元组不存在时返回 404，不隐式创建。
func (h *HTTPHandler) UpdateContent(c *gin.Context) {
	page := strings.TrimSpace(c.Param("page"))
	section := strings.TrimSpace(c.Param("section"))
	key := strings.TrimSpace(c.Param("key"))

	var req entity.ContentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, map[string]string{"value": "Value is required"})
		return
	}

	if req.Type == "" {
		req.Type = entity.ContentTypeText
	}
	if !entity.ValidContentType(req.Type) {
		ValidationFailed(c, map[string]string{"type": "Invalid content type"})
		return
	}
	if req.Type == entity.ContentTypeHTML {
		req.Value = htmlSanitizer.Sanitize(req.Value)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateContent(ctx, page, section, key, req.Value, req.Type); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeContentNotFound, "Content not found")
			return
		}
		logrus.WithError(err).Error("failed to update content")
		InternalError(c, "Failed to update content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content updated successfully",
		"data": gin.H{
			"page":    page,
			"section": section,
			"key":     key,
			"value":   req.Value,
			"type":    req.Type,
		},
	})
}

// DeleteContent 删除内容项。不存在时同样返回成功（幂等删除），
// 与原站行为保持一致；未命中会记录日志便于排查。
func (h *HTTPHandler) DeleteContent(c *gin.Context) {
	page := strings.TrimSpace(c.Param("page"))
	section := strings.TrimSpace(c.Param("section"))
	key := strings.TrimSpace(c.Param("key"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	affected, err := h.repo.DeleteContent(ctx, page, section, key)
	if err != nil {
		logrus.WithError(err).Error("failed to delete content")
		InternalError(c, "Failed to delete content")
		return
	}
	if affected == 0 {
		logrus.WithFields(logrus.Fields{"page": page, "section": section, "key": key}).
			Info("delete requested for absent content key")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

// PreviewContent 渲染内容值为净化后的 HTML，供管理端编辑预览。
func (h *HTTPHandler) PreviewContent(c *gin.Context) {
	var req entity.ContentPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, map[string]string{"value": "Value is required"})
		return
	}

	if req.Type == "" {
		req.Type = entity.ContentTypeText
	}
	if !entity.ValidContentType(req.Type) {
		ValidationFailed(c, map[string]string{"type": "Invalid content type"})
		return
	}

	rendered, err := renderContentHTML(req.Value, req.Type)
	if err != nil {
		ValidationFailed(c, map[string]string{"value": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": rendered})
}
