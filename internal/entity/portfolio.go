package entity

import "time"

// DbPortfolioItem is a persisted case study. Technologies are a comma-joined
// string; the gallery is a JSON array of image URLs.
type DbPortfolioItem struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Title         string      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug          string      `gorm:"column:slug;type:varchar(255);uniqueIndex;not null" json:"slug"`
	Client        string      `gorm:"column:client;type:varchar(255)" json:"client"`
	Industry      string      `gorm:"column:industry;type:varchar(255)" json:"industry"`
	Description   string      `gorm:"column:description;type:text;not null" json:"description"`
	Challenge     string      `gorm:"column:challenge;type:text" json:"challenge"`
	Solution      string      `gorm:"column:solution;type:text" json:"solution"`
	Results       string      `gorm:"column:results;type:text" json:"results"`
	Technologies  string      `gorm:"column:technologies;type:text" json:"technologies"`
	FeaturedImage string      `gorm:"column:featured_image;type:varchar(500)" json:"featured_image"`
	Gallery       StringArray `gorm:"column:gallery;type:text" json:"gallery"`
	Status        string      `gorm:"column:status;type:varchar(20);index;not null;default:draft" json:"status"`
}

// TableName matches the original schema's singular table name.
func (DbPortfolioItem) TableName() string {
	return "portfolio"
}

// PortfolioSummary omits the narrative fields for admin list views.
type PortfolioSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Client      string    `json:"client"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PortfolioToSummary 将 DbPortfolioItem 转换为列表项。
func PortfolioToSummary(p *DbPortfolioItem) PortfolioSummary {
	if p == nil {
		return PortfolioSummary{}
	}
	return PortfolioSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Client:      p.Client,
		Industry:    p.Industry,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
