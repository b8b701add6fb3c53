package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bdconsulting/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListPublishedPosts 公开博客列表，只含已发布文章的摘要信息。
func (h *HTTPHandler) ListPublishedPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	posts, err := h.repo.ListPublishedPosts(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch blog posts")
		InternalError(c, "Failed to fetch blog posts")
		return
	}

	summaries := make([]entity.BlogPostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, entity.BlogPostToSummary(&posts[i], false))
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": summaries,
		"total": len(summaries),
	})
}

// GetPublishedPost 按 slug 读取已发布文章。草稿与归档文章对公众不可见，
// 与不存在的文章不可区分。
func (h *HTTPHandler) GetPublishedPost(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	post, err := h.repo.GetPublishedPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodePostNotFound, "Blog post not found")
			return
		}
		logrus.WithError(err).WithField("slug", slug).Error("failed to fetch blog post")
		InternalError(c, "Failed to fetch blog post")
		return
	}

	c.JSON(http.StatusOK, post)
}
