package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListPublishedPortfolio 公开案例列表，只含已发布条目。
func (h *HTTPHandler) ListPublishedPortfolio(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.ListPublishedPortfolio(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch portfolio items")
		InternalError(c, "Failed to fetch portfolio items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"portfolio": items,
		"total":     len(items),
	})
}

// GetPublishedPortfolio 按 slug 读取已发布案例。
func (h *HTTPHandler) GetPublishedPortfolio(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repo.GetPublishedPortfolioBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodePortfolioNotFound, "Portfolio item not found")
			return
		}
		logrus.WithError(err).WithField("slug", slug).Error("failed to fetch portfolio item")
		InternalError(c, "Failed to fetch portfolio item")
		return
	}

	c.JSON(http.StatusOK, item)
}
