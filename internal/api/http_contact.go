package api

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"bdconsulting/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)

// validateContactRequest 在触碰存储层之前完成全部边界校验。
func validateContactRequest(req *entity.ContactSubmitRequest) fieldErrors {
	errs := fieldErrors{}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Service = strings.TrimSpace(req.Service)
	req.Message = strings.TrimSpace(req.Message)
	req.BudgetRange = strings.TrimSpace(req.BudgetRange)
	req.Timeline = strings.TrimSpace(req.Timeline)
	req.ContactMethod = strings.TrimSpace(req.ContactMethod)

	if req.FirstName == "" {
		errs.add("first_name", "First name is required")
	} else if !lengthBetween(req.FirstName, 2, 50) {
		errs.add("first_name", "First name must be between 2 and 50 characters")
	}

	if req.LastName == "" {
		errs.add("last_name", "Last name is required")
	} else if !lengthBetween(req.LastName, 2, 50) {
		errs.add("last_name", "Last name must be between 2 and 50 characters")
	}

	if !validEmail(req.Email) {
		errs.add("email", "Valid email is required")
	}

	if req.Company != "" && !lengthBetween(req.Company, 1, 100) {
		errs.add("company", "Company name must be less than 100 characters")
	}

	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		errs.add("phone", "Valid phone number required")
	}

	if req.Service != "" && !oneOf(req.Service, entity.ServiceOptions) {
		errs.add("service", "Invalid service selection")
	}

	if req.BudgetRange != "" && !oneOf(req.BudgetRange, entity.BudgetRangeOptions) {
		errs.add("budget_range", "Invalid budget range selection")
	}

	if req.Timeline != "" && !oneOf(req.Timeline, entity.TimelineOptions) {
		errs.add("timeline", "Invalid timeline selection")
	}

	if req.ContactMethod != "" && !oneOf(req.ContactMethod, entity.ContactMethodOptions) {
		errs.add("contact_method", "Invalid contact method selection")
	}

	if req.Message == "" {
		errs.add("message", "Message is required")
	} else if !lengthBetween(req.Message, 10, 2000) {
		errs.add("message", "Message must be between 10 and 2000 characters")
	}

	return errs
}

// buildStoredMessage folds the optional scheduling/budget details into the
// message body; contact_messages has no dedicated columns for them.
func buildStoredMessage(req *entity.ContactSubmitRequest) string {
	var b strings.Builder
	b.WriteString(req.Message)
	b.WriteString("\n\n--- Additional Details ---\n")
	if req.BudgetRange != "" {
		b.WriteString("Budget Range: " + req.BudgetRange + "\n")
	}
	if req.Timeline != "" {
		b.WriteString("Timeline: " + req.Timeline + "\n")
	}
	if req.ContactMethod != "" {
		b.WriteString("Preferred Contact: " + req.ContactMethod + "\n")
	}
	if req.PreferredDate != "" {
		b.WriteString("Preferred Date: " + req.PreferredDate + "\n")
	}
	if req.PreferredTime != "" {
		b.WriteString("Preferred Time: " + req.PreferredTime)
	}
	return b.String()
}

// SubmitContact 处理公开联系表单。写库成功即返回 201；
// 通知邮件与自动回复在后台尽力发送，失败只记日志。
func (h *HTTPHandler) SubmitContact(c *gin.Context) {
	var req entity.ContactSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	if errs := validateContactRequest(&req); !errs.ok() {
		ValidationFailed(c, errs)
		return
	}

	msg := &entity.DbContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Phone:     req.Phone,
		Service:   req.Service,
		Message:   buildStoredMessage(&req),
		Status:    entity.MessageStatusNew,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.CreateContactMessage(ctx, msg); err != nil {
		logrus.WithError(err).Error("failed to store contact message")
		ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError,
			"An error occurred while processing your request. Please try again.")
		return
	}

	if h.mailer != nil && h.mailer.Enabled() {
		// 与请求解耦发送，客户端断开也不影响
		go h.mailer.SendContactNotifications(req)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your message! We will get back to you within 24 hours.",
		"success": true,
	})
}
