package mailer

import (
	"fmt"
	"html"
	"net/smtp"
	"strings"
	"time"

	"bdconsulting/internal/config"
	"bdconsulting/internal/entity"

	"github.com/sirupsen/logrus"
)

// Mailer 通过 SMTP 发送表单通知邮件。发送失败只记日志，绝不影响请求本身。
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
	to   string
}

// New builds a Mailer from configuration. The mailer is disabled when SMTP
// credentials are absent.
func New(cfg config.Config) *Mailer {
	from := strings.TrimSpace(cfg.FromEmail)
	if from == "" {
		from = strings.TrimSpace(cfg.SMTPUser)
	}
	to := strings.TrimSpace(cfg.ToEmail)
	if to == "" {
		to = "hello@brandenburgdata.com"
	}
	return &Mailer{
		host: strings.TrimSpace(cfg.SMTPHost),
		port: strings.TrimSpace(cfg.SMTPPort),
		user: strings.TrimSpace(cfg.SMTPUser),
		pass: strings.TrimSpace(cfg.SMTPPass),
		from: from,
		to:   to,
	}
}

// Enabled reports whether SMTP credentials are configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.user != "" && m.pass != ""
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	addr := m.host + ":" + m.port

	msg := "From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func optionalRow(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return "<p><strong>" + label + ":</strong> " + html.EscapeString(value) + "</p>"
}

func optionalItem(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return "<li><strong>" + label + ":</strong> " + html.EscapeString(value) + "</li>"
}

// SendContactNotifications 发送管理员通知与客户自动回复。
func (m *Mailer) SendContactNotifications(req entity.ContactSubmitRequest) {
	if !m.Enabled() {
		return
	}

	service := req.Service
	if service == "" {
		service = "General Inquiry"
	}

	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	b.WriteString("<p><strong>From:</strong> " + html.EscapeString(req.FirstName+" "+req.LastName) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + html.EscapeString(req.Email) + "</p>")
	b.WriteString(optionalRow("Company", req.Company))
	b.WriteString(optionalRow("Phone", req.Phone))
	b.WriteString(optionalRow("Service Interest", req.Service))
	b.WriteString(optionalRow("Budget Range", req.BudgetRange))
	b.WriteString(optionalRow("Timeline", req.Timeline))
	b.WriteString(optionalRow("Preferred Contact", req.ContactMethod))
	b.WriteString(optionalRow("Preferred Date", req.PreferredDate))
	b.WriteString(optionalRow("Preferred Time", req.PreferredTime))
	b.WriteString("<p><strong>Message:</strong></p>")
	b.WriteString("<p>" + strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>") + "</p>")
	b.WriteString("<hr><p><small>Submitted on " + time.Now().Format("2006-01-02 15:04:05") + "</small></p>")

	if err := m.send(m.to, "New Contact Form Submission - "+service, b.String()); err != nil {
		logrus.WithError(err).Error("failed to send contact notification email")
	}

	var r strings.Builder
	r.WriteString(`<div style="max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif;">`)
	r.WriteString(`<h2 style="color: #0ea5e9;">Thank you for your inquiry!</h2>`)
	r.WriteString("<p>Dear " + html.EscapeString(req.FirstName) + ",</p>")
	r.WriteString("<p>Thank you for reaching out to Brandenburg Data Consulting. We have received your message and will respond within 24 hours.</p>")
	r.WriteString("<p><strong>Your inquiry summary:</strong></p><ul>")
	r.WriteString(optionalItem("Service of Interest", req.Service))
	r.WriteString(optionalItem("Budget Range", req.BudgetRange))
	r.WriteString(optionalItem("Timeline", req.Timeline))
	r.WriteString(optionalItem("Preferred Contact Method", req.ContactMethod))
	r.WriteString(optionalItem("Preferred Date", req.PreferredDate))
	r.WriteString(optionalItem("Preferred Time", req.PreferredTime))
	r.WriteString("<li><strong>Message:</strong> " + html.EscapeString(req.Message) + "</li></ul>")
	r.WriteString("<p>In the meantime, feel free to explore our services and insights on our website.</p>")
	r.WriteString("<p>Best regards,<br>Brandenburg Data Consulting Team</p>")
	r.WriteString(`<hr><p style="font-size: 12px; color: #666;">Brandenburg Data Consulting<br>Email: hello@brandenburgdata.com<br>Phone: +1 (555) 123-4567</p>`)
	r.WriteString("</div>")

	if err := m.send(req.Email, "Thank you for contacting Brandenburg Data Consulting", r.String()); err != nil {
		logrus.WithError(err).Error("failed to send contact auto-reply email")
	}
}

// SendConsultationNotification 向管理员通报新的咨询预约。
func (m *Mailer) SendConsultationNotification(req entity.ConsultationSubmitRequest) {
	if !m.Enabled() {
		return
	}

	var b strings.Builder
	b.WriteString("<h2>New Consultation Request</h2>")
	b.WriteString("<p><strong>From:</strong> " + html.EscapeString(req.FirstName+" "+req.LastName) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + html.EscapeString(req.Email) + "</p>")
	b.WriteString(optionalRow("Company", req.Company))
	b.WriteString(optionalRow("Phone", req.Phone))
	b.WriteString("<p><strong>Consultation Type:</strong> " + html.EscapeString(req.ConsultationType) + "</p>")
	b.WriteString(optionalRow("Preferred Date", req.PreferredDate))
	b.WriteString(optionalRow("Preferred Time", req.PreferredTime))
	b.WriteString(optionalRow("Budget Range", req.BudgetRange))
	b.WriteString(optionalRow("Timeline", req.Timeline))
	b.WriteString("<p><strong>Project Description:</strong></p>")
	b.WriteString("<p>" + strings.ReplaceAll(html.EscapeString(req.ProjectDescription), "\n", "<br>") + "</p>")
	b.WriteString("<hr><p><small>Submitted on " + time.Now().Format("2006-01-02 15:04:05") + "</small></p>")

	if err := m.send(m.to, "New Consultation Request - "+req.ConsultationType, b.String()); err != nil {
		logrus.WithError(err).Error("failed to send consultation notification email")
	}
}
