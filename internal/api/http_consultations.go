package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bdconsulting/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SubmitConsultation 处理公开预约咨询请求。
func (h *HTTPHandler) SubmitConsultation(c *gin.Context) {
	var req entity.ConsultationSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Phone = strings.TrimSpace(req.Phone)
	req.PreferredDate = strings.TrimSpace(req.PreferredDate)
	req.PreferredTime = strings.TrimSpace(req.PreferredTime)
	req.ConsultationType = strings.TrimSpace(req.ConsultationType)
	req.ProjectDescription = strings.TrimSpace(req.ProjectDescription)
	req.BudgetRange = strings.TrimSpace(req.BudgetRange)
	req.Timeline = strings.TrimSpace(req.Timeline)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.ConsultationType == "" || req.ProjectDescription == "" {
		BadRequest(c, ErrCodeValidation,
			"Missing required fields: first_name, last_name, email, consultation_type, project_description")
		return
	}

	if !validEmail(req.Email) {
		BadRequest(c, ErrCodeValidation, "Invalid email format")
		return
	}

	item := &entity.DbConsultation{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Company:            req.Company,
		Phone:              req.Phone,
		PreferredDate:      req.PreferredDate,
		PreferredTime:      req.PreferredTime,
		ConsultationType:   req.ConsultationType,
		ProjectDescription: req.ProjectDescription,
		BudgetRange:        req.BudgetRange,
		Timeline:           req.Timeline,
		Status:             entity.ConsultationStatusPending,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.CreateConsultation(ctx, item); err != nil {
		logrus.WithError(err).Error("failed to store consultation request")
		ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError,
			"Failed to schedule consultation. Please try again later.")
		return
	}

	if h.mailer != nil && h.mailer.Enabled() {
		go h.mailer.SendConsultationNotification(req)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Consultation scheduled successfully! We will contact you within 24 hours to confirm the details.",
		"status":  "success",
	})
}
