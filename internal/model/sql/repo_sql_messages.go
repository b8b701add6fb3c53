package sql

import (
	"bdconsulting/internal/entity"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// CreateContactMessage persists a submitted contact form.
func (r *GormRepository) CreateContactMessage(ctx context.Context, msg *entity.DbContactMessage) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if msg == nil {
		return fmt.Errorf("message is nil")
	}
	if msg.Status == "" {
		msg.Status = entity.MessageStatusNew
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListContactMessages returns paginated messages, newest first.
func (r *GormRepository) ListContactMessages(ctx context.Context, params *entity.MessageQuery) ([]entity.DbContactMessage, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbContactMessage{})
	if params != nil {
		if trimmed := strings.TrimSpace(params.Status); trimmed != "" {
			query = query.Where("status = ?", trimmed)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	listQuery := &entity.AdminListQuery{}
	if params != nil {
		listQuery.Page = params.Page
		listQuery.Limit = params.Limit
	}
	page, limit, offset := normalisePaging(listQuery)

	var messages []entity.DbContactMessage
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&messages).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, limit)
	return messages, meta, nil
}

// UpdateContactMessageStatus sets the triage status of one message.
func (r *GormRepository) UpdateContactMessageStatus(ctx context.Context, id uint, status string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid message id")
	}
	result := r.db.WithContext(ctx).Model(&entity.DbContactMessage{}).
		Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountContactMessages counts messages, optionally filtered by status.
func (r *GormRepository) CountContactMessages(ctx context.Context, status string) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	query := r.db.WithContext(ctx).Model(&entity.DbContactMessage{})
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		query = query.Where("status = ?", trimmed)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RecentContactMessages returns the newest messages for the dashboard.
func (r *GormRepository) RecentContactMessages(ctx context.Context, limit int) ([]entity.DbContactMessage, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if limit <= 0 {
		limit = 5
	}
	var messages []entity.DbContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
