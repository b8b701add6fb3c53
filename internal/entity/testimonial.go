package entity

import "time"

const TestimonialStatusActive = "active"

// DbTestimonial stores a client quote. There is no public listing endpoint;
// testimonials are read through the admin panel only.
type DbTestimonial struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	ClientName  string    `gorm:"column:client_name;type:varchar(255);not null" json:"client_name"`
	ClientTitle string    `gorm:"column:client_title;type:varchar(255)" json:"client_title"`
	Company     string    `gorm:"column:company;type:varchar(255)" json:"company"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	Rating      int       `gorm:"column:rating;not null;default:5" json:"rating"`
	Avatar      string    `gorm:"column:avatar;type:varchar(500)" json:"avatar"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:active" json:"status"`
}

// TableName 指定表名。
func (DbTestimonial) TableName() string {
	return "testimonials"
}
