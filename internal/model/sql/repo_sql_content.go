package sql

import (
	"bdconsulting/internal/entity"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertContent inserts the item or, when the (page, section, key) triple
// already exists, replaces its value and type. The conflict resolution happens
// in a single statement so concurrent callers cannot create duplicate rows.
func (r *GormRepository) UpsertContent(ctx context.Context, item *entity.DbContent) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if item == nil {
		return fmt.Errorf("content item is nil")
	}
	if item.Type == "" {
		item.Type = entity.ContentTypeText
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page"}, {Name: "section"}, {Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      item.Value,
			"type":       item.Type,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(item).Error
}

// SeedContent inserts default rows, silently skipping triples that already
// exist so edited values survive restarts.
func (r *GormRepository) SeedContent(ctx context.Context, items []entity.DbContent) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if len(items) == 0 {
		return nil
	}
	rows := make([]entity.DbContent, len(items))
	copy(rows, items)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}, {Name: "section"}, {Name: "key"}},
		DoNothing: true,
	}).Create(&rows).Error
}

// UpdateContent modifies an existing item; it fails with ErrRecordNotFound
// when the triple is absent.
func (r *GormRepository) UpdateContent(ctx context.Context, page, section, key, value, contentType string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if contentType == "" {
		contentType = entity.ContentTypeText
	}
	// map 条件让 GORM 按方言为保留字 key 加引号
	result := r.db.WithContext(ctx).Model(&entity.DbContent{}).
		Where(map[string]interface{}{"page": page, "section": section, "key": key}).
		Updates(map[string]interface{}{"value": value, "type": contentType})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteContent removes the item and reports how many rows matched.
func (r *GormRepository) DeleteContent(ctx context.Context, page, section, key string) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	result := r.db.WithContext(ctx).
		Where(map[string]interface{}{"page": page, "section": section, "key": key}).
		Delete(&entity.DbContent{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListContentByPage returns every item on one page.
func (r *GormRepository) ListContentByPage(ctx context.Context, page string) ([]entity.DbContent, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var items []entity.DbContent
	if err := r.db.WithContext(ctx).
		Where("page = ?", strings.TrimSpace(page)).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListContentBySection returns every item in one page section.
func (r *GormRepository) ListContentBySection(ctx context.Context, page, section string) ([]entity.DbContent, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var items []entity.DbContent
	if err := r.db.WithContext(ctx).
		Where("page = ? AND section = ?", strings.TrimSpace(page), strings.TrimSpace(section)).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAllContent returns every item, ordered for deterministic admin display.
func (r *GormRepository) ListAllContent(ctx context.Context) ([]entity.DbContent, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var items []entity.DbContent
	if err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "page"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "section"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
