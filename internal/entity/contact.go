package entity

import "time"

// 消息的人工处理状态，管理端可随时改写
const (
	MessageStatusNew     = "new"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// MessageStatuses lists every accepted contact message status.
var MessageStatuses = []string{MessageStatusNew, MessageStatusRead, MessageStatusReplied}

// DbContactMessage stores a submitted contact form.
type DbContactMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FirstName string    `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Company   string    `gorm:"column:company;type:varchar(100)" json:"company"`
	Phone     string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Service   string    `gorm:"column:service;type:varchar(100)" json:"service"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Status    string    `gorm:"column:status;type:varchar(20);index;not null;default:new" json:"status"`
}

// TableName 指定表名。
func (DbContactMessage) TableName() string {
	return "contact_messages"
}

// ContactSubmitRequest is the public contact form payload. Optional scheduling
// and budget details are folded into the stored message body rather than
// having their own columns.
type ContactSubmitRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	Message       string `json:"message"`
	BudgetRange   string `json:"budget_range"`
	Timeline      string `json:"timeline"`
	ContactMethod string `json:"contact_method"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
}

// MessageQuery filters the admin message list.
type MessageQuery struct {
	Page   int64
	Limit  int64
	Status string
}

// MessageStatusUpdateRequest sets a message's triage status.
type MessageStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// 联系表单的下拉枚举，与前端选项保持一致
var (
	ServiceOptions = []string{
		"Data Strategy Consulting",
		"Data Modeling & Architecture",
		"Data Transformation & ETL",
		"Agentic AI Solutions",
		"Machine Learning Implementation",
		"Cloud Data Solutions",
		"Business Intelligence & Analytics",
		"Data Migration Projects",
		"Training & Workshops",
		"General Inquiry",
	}

	BudgetRangeOptions = []string{
		"Under $10,000",
		"$10,000 - $50,000",
		"$50,000 - $100,000",
		"$100,000 - $250,000",
		"$250,000+",
		"To be discussed",
	}

	TimelineOptions = []string{
		"Immediate (< 1 month)",
		"1-3 months",
		"3-6 months",
		"6-12 months",
		"12+ months",
		"Flexible/Planning stage",
	}

	ContactMethodOptions = []string{
		"Email",
		"Phone call",
		"Video conference",
		"In-person meeting",
		"No preference",
	}
)
