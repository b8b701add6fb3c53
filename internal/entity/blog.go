package entity

import "time"

// 博客与案例共享的发布状态
const (
	PublishStatusDraft     = "draft"
	PublishStatusPublished = "published"
	PublishStatusArchived  = "archived"
)

// PublishStatuses lists every accepted blog/portfolio status.
var PublishStatuses = []string{PublishStatusDraft, PublishStatusPublished, PublishStatusArchived}

// DefaultAuthor is used when a post is created without an explicit author.
const DefaultAuthor = "Brandenburg Data Consulting"

// DbBlogPost is a persisted blog article. Tags are a comma-joined string, as
// the original site stored them.
type DbBlogPost struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug          string    `gorm:"column:slug;type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt       string    `gorm:"column:excerpt;type:text" json:"excerpt"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	FeaturedImage string    `gorm:"column:featured_image;type:varchar(500)" json:"featured_image"`
	Author        string    `gorm:"column:author;type:varchar(255);default:Brandenburg Data Consulting" json:"author"`
	Status        string    `gorm:"column:status;type:varchar(20);index;not null;default:draft" json:"status"`
	Tags          string    `gorm:"column:tags;type:text" json:"tags"`
}

// TableName 指定表名。
func (DbBlogPost) TableName() string {
	return "blog_posts"
}

// BlogPostSummary omits the body for list views.
type BlogPostSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	Status    string    `json:"status,omitempty"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPostToSummary 将 DbBlogPost 转换为列表项。
func BlogPostToSummary(p *DbBlogPost, includeStatus bool) BlogPostSummary {
	if p == nil {
		return BlogPostSummary{}
	}
	s := BlogPostSummary{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Author:    p.Author,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if includeStatus {
		s.Status = p.Status
	}
	return s
}
