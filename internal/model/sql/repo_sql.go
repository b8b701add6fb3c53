package sql

import (
	"bdconsulting/internal/entity"

	"gorm.io/gorm"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// calculatePagination calculates pagination metrics
func (r *GormRepository) calculatePagination(totalCount int64, page, limit int64) *entity.Meta {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	return &entity.Meta{
		Total:    totalCount,
		Page:     page,
		PageSize: limit,
	}
}

// normalisePaging clamps paging params to safe values and returns the offset.
func normalisePaging(params *entity.AdminListQuery) (page, limit, offset int64) {
	page = 1
	limit = 20
	if params != nil {
		if params.Page > 0 {
			page = params.Page
		}
		if params.Limit > 0 {
			limit = params.Limit
		}
	}
	offset = (page - 1) * limit
	return page, limit, offset
}
