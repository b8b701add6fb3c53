package sql

import (
	"bdconsulting/internal/entity"
	"context"
	"fmt"
)

// ListTestimonials returns every testimonial, newest first.
func (r *GormRepository) ListTestimonials(ctx context.Context) ([]entity.DbTestimonial, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var testimonials []entity.DbTestimonial
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// CreateConsultation persists a consultation booking request.
func (r *GormRepository) CreateConsultation(ctx context.Context, consultation *entity.DbConsultation) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if consultation == nil {
		return fmt.Errorf("consultation is nil")
	}
	if consultation.Status == "" {
		consultation.Status = entity.ConsultationStatusPending
	}
	return r.db.WithContext(ctx).Create(consultation).Error
}
