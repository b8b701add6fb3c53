package sql

import (
	"bdconsulting/internal/entity"
	"context"
	"fmt"
	"strings"
)

// ListPublishedPosts returns published posts, newest first.
func (r *GormRepository) ListPublishedPosts(ctx context.Context) ([]entity.DbBlogPost, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var posts []entity.DbBlogPost
	if err := r.db.WithContext(ctx).
		Where("status = ?", entity.PublishStatusPublished).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublishedPostBySlug loads one published post. Drafts and archived posts
// behave as nonexistent.
func (r *GormRepository) GetPublishedPostBySlug(ctx context.Context, slug string) (*entity.DbBlogPost, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var post entity.DbBlogPost
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", strings.TrimSpace(slug), entity.PublishStatusPublished).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns paginated posts for the admin panel, any status.
func (r *GormRepository) ListPosts(ctx context.Context, params *entity.AdminListQuery) ([]entity.DbBlogPost, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbBlogPost{})
	if params != nil {
		if trimmed := strings.TrimSpace(params.Status); trimmed != "" {
			query = query.Where("status = ?", trimmed)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page, limit, offset := normalisePaging(params)

	var posts []entity.DbBlogPost
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&posts).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, limit)
	return posts, meta, nil
}

// CountPosts counts posts, optionally filtered by status.
func (r *GormRepository) CountPosts(ctx context.Context, status string) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	query := r.db.WithContext(ctx).Model(&entity.DbBlogPost{})
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		query = query.Where("status = ?", trimmed)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
