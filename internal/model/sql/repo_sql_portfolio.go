package sql

import (
	"bdconsulting/internal/entity"
	"context"
	"fmt"
	"strings"
)

// ListPublishedPortfolio returns published case studies, newest first.
func (r *GormRepository) ListPublishedPortfolio(ctx context.Context) ([]entity.DbPortfolioItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var items []entity.DbPortfolioItem
	if err := r.db.WithContext(ctx).
		Where("status = ?", entity.PublishStatusPublished).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetPublishedPortfolioBySlug loads one published case study.
func (r *GormRepository) GetPublishedPortfolioBySlug(ctx context.Context, slug string) (*entity.DbPortfolioItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var item entity.DbPortfolioItem
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", strings.TrimSpace(slug), entity.PublishStatusPublished).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListPortfolio returns paginated case studies for the admin panel, any status.
func (r *GormRepository) ListPortfolio(ctx context.Context, params *entity.AdminListQuery) ([]entity.DbPortfolioItem, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbPortfolioItem{})
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

	var items []entity.DbPortfolioItem
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&items).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, limit)
	return items, meta, nil
}

// CountPortfolio counts case studies, optionally filtered by status.
func (r *GormRepository) CountPortfolio(ctx context.Context, status string) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	query := r.db.WithContext(ctx).Model(&entity.DbPortfolioItem{})
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		query = query.Where("status = ?", trimmed)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
