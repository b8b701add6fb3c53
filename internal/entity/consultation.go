package entity

import "time"

const ConsultationStatusPending = "pending"

// DbConsultation stores a consultation booking request. Write-only from the
// public side; there is no public read endpoint.
type DbConsultation struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	FirstName          string    `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName           string    `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	Email              string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Company            string    `gorm:"column:company;type:varchar(100)" json:"company"`
	Phone              string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	PreferredDate      string    `gorm:"column:preferred_date;type:varchar(20)" json:"preferred_date"`
	PreferredTime      string    `gorm:"column:preferred_time;type:varchar(50)" json:"preferred_time"`
	ConsultationType   string    `gorm:"column:consultation_type;type:varchar(100);not null" json:"consultation_type"`
	ProjectDescription string    `gorm:"column:project_description;type:text;not null" json:"project_description"`
	BudgetRange        string    `gorm:"column:budget_range;type:varchar(50)" json:"budget_range"`
	Timeline           string    `gorm:"column:timeline;type:varchar(50)" json:"timeline"`
	Status             string    `gorm:"column:status;type:varchar(20);index;not null;default:pending" json:"status"`
	Notes              string    `gorm:"column:notes;type:text" json:"notes"`
}

// TableName 指定表名。
func (DbConsultation) TableName() string {
	return "consultations"
}

// ConsultationSubmitRequest is the public booking payload.
type ConsultationSubmitRequest struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Company            string `json:"company"`
	Phone              string `json:"phone"`
	PreferredDate      string `json:"preferred_date"`
	PreferredTime      string `json:"preferred_time"`
	ConsultationType   string `json:"consultation_type"`
	ProjectDescription string `json:"project_description"`
	BudgetRange        string `json:"budget_range"`
	Timeline           string `json:"timeline"`
}
