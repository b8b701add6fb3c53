package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bdconsulting/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// parseAdminListQuery 解析 page/limit/status 查询参数并做范围校验。
func parseAdminListQuery(c *gin.Context, statuses []string) (*entity.AdminListQuery, fieldErrors) {
	errs := fieldErrors{}
	query := &entity.AdminListQuery{Page: 1, Limit: 20}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || page < 1 {
			errs.add("page", "Page must be a positive integer")
		} else {
			query.Page = page
		}
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			errs.add("limit", "Limit must be between 1 and 100")
		} else {
			query.Limit = limit
		}
	}

	if raw := c.Query("status"); raw != "" {
		if !oneOf(raw, statuses) {
			errs.add("status", "Invalid status")
		} else {
			query.Status = raw
		}
	}

	return query, errs
}

// AdminIndex 列出管理端可用的接口。
func (h *HTTPHandler) AdminIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Admin Dashboard API",
		"endpoints": gin.H{
			"GET /api/admin/dashboard":           "Get dashboard statistics",
			"GET /api/admin/messages":            "Get contact messages with pagination",
			"PUT /api/admin/messages/:id/status": "Update message status",
			"GET /api/admin/blog":                "Get blog posts",
			"GET /api/admin/portfolio":           "Get portfolio items",
			"GET /api/admin/testimonials":        "Get testimonials",
		},
		"note": "All admin routes require authentication and admin role",
		"user": CurrentUser(c),
	})
}

// Dashboard 汇总管理端首页统计数据。
func (h *HTTPHandler) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	newMessages, err := h.repo.CountContactMessages(ctx, entity.MessageStatusNew)
	if err != nil {
		logrus.WithError(err).Error("failed to count new messages")
		InternalError(c, "Failed to fetch dashboard stats")
		return
	}

	totalMessages, err := h.repo.CountContactMessages(ctx, "")
	if err != nil {
		logrus.WithError(err).Error("failed to count messages")
		InternalError(c, "Failed to fetch dashboard stats")
		return
	}

	publishedPosts, err := h.repo.CountPosts(ctx, entity.PublishStatusPublished)
	if err != nil {
		logrus.WithError(err).Error("failed to count published posts")
		InternalError(c, "Failed to fetch dashboard stats")
		return
	}

	portfolioItems, err := h.repo.CountPortfolio(ctx, entity.PublishStatusPublished)
	if err != nil {
		logrus.WithError(err).Error("failed to count portfolio items")
		InternalError(c, "Failed to fetch dashboard stats")
		return
	}

	recent, err := h.repo.RecentContactMessages(ctx, 5)
	if err != nil {
		logrus.WithError(err).Error("failed to load recent messages")
		InternalError(c, "Failed to fetch dashboard stats")
		return
	}

	// 仪表盘只展示来信人概要，不带消息正文
	recentSummaries := make([]gin.H, 0, len(recent))
	for _, msg := range recent {
		recentSummaries = append(recentSummaries, gin.H{
			"id":         msg.ID,
			"first_name": msg.FirstName,
			"last_name":  msg.LastName,
			"email":      msg.Email,
			"service":    msg.Service,
			"created_at": msg.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"newMessages":    newMessages,
			"totalMessages":  totalMessages,
			"publishedPosts": publishedPosts,
			"portfolioItems": portfolioItems,
		},
		"recentMessages": recentSummaries,
	})
}

// ListMessages 分页返回联系消息，可按状态过滤。
func (h *HTTPHandler) ListMessages(c *gin.Context) {
	query, errs := parseAdminListQuery(c, entity.MessageStatuses)
	if !errs.ok() {
		ValidationFailed(c, errs)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	messages, meta, err := h.repo.ListContactMessages(ctx, &entity.MessageQuery{
		Page:   query.Page,
		Limit:  query.Limit,
		Status: query.Status,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to list contact messages")
		InternalError(c, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   messages,
		"pagination": entity.MetaToPagination(meta),
	})
}

// UpdateMessageStatus 更新某条消息的处理状态。
func (h *HTTPHandler) UpdateMessageStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, ErrCodeValidation, "Invalid message id")
		return
	}

	var req entity.MessageStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if !oneOf(req.Status, entity.MessageStatuses) {
		errs := fieldErrors{}
		errs.add("status", "Invalid status")
		ValidationFailed(c, errs)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateContactMessageStatus(ctx, uint(id), req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeMessageNotFound, "Message not found")
			return
		}
		logrus.WithError(err).WithField("id", id).Error("failed to update message status")
		InternalError(c, "Failed to update message status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message status updated successfully"})
}

// ListAdminPosts 分页返回全部博客文章（含草稿）。
func (h *HTTPHandler) ListAdminPosts(c *gin.Context) {
	query, errs := parseAdminListQuery(c, entity.PublishStatuses)
	if !errs.ok() {
		ValidationFailed(c, errs)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	posts, meta, err := h.repo.ListPosts(ctx, query)
	if err != nil {
		logrus.WithError(err).Error("failed to list blog posts")
		InternalError(c, "Failed to fetch blog posts")
		return
	}

	summaries := make([]entity.BlogPostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, entity.BlogPostToSummary(&posts[i], true))
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      summaries,
		"pagination": entity.MetaToPagination(meta),
	})
}

// ListAdminPortfolio 分页返回全部案例（含草稿）。
func (h *HTTPHandler) ListAdminPortfolio(c *gin.Context) {
	query, errs := parseAdminListQuery(c, entity.PublishStatuses)
	if !errs.ok() {
		ValidationFailed(c, errs)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, meta, err := h.repo.ListPortfolio(ctx, query)
	if err != nil {
		logrus.WithError(err).Error("failed to list portfolio items")
		InternalError(c, "Failed to fetch portfolio items")
		return
	}

	summaries := make([]entity.PortfolioSummary, 0, len(items))
	for i := range items {
		summaries = append(summaries, entity.PortfolioToSummary(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      summaries,
		"pagination": entity.MetaToPagination(meta),
	})
}

// ListAdminTestimonials 返回全部客户评价（不分页）。
func (h *HTTPHandler) ListAdminTestimonials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	testimonials, err := h.repo.ListTestimonials(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list testimonials")
		InternalError(c, "Failed to fetch testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}
