package entity

import "time"

// 内容值的类型标记
const (
	ContentTypeText     = "text"
	ContentTypeHTML     = "html"
	ContentTypeMarkdown = "markdown"
	ContentTypeJSON     = "json"
)

// ContentTypes lists every accepted content type value.
var ContentTypes = []string{ContentTypeText, ContentTypeHTML, ContentTypeMarkdown, ContentTypeJSON}

// DbContent is one editable text fragment, addressed by (page, section, key).
type DbContent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Page      string    `gorm:"column:page;type:varchar(100);uniqueIndex:idx_content_triple;not null" json:"page"`
	Section   string    `gorm:"column:section;type:varchar(100);uniqueIndex:idx_content_triple;not null" json:"section"`
	Key       string    `gorm:"column:key;type:varchar(100);uniqueIndex:idx_content_triple;not null" json:"key"`
	Value     string    `gorm:"column:value;type:text" json:"value"`
	Type      string    `gorm:"column:type;type:varchar(20);not null;default:text" json:"type"`
}

// TableName matches the original schema's bare table name.
func (DbContent) TableName() string {
	return "content"
}

// ContentUpsertRequest creates or replaces a content item.
type ContentUpsertRequest struct {
	Page    string `json:"page" binding:"required"`
	Section string `json:"section" binding:"required"`
	Key     string `json:"key" binding:"required"`
	Value   string `json:"value" binding:"required"`
	Type    string `json:"type"`
}

// ContentUpdateRequest updates an existing content item in place.
type ContentUpdateRequest struct {
	Value string `json:"value" binding:"required"`
	Type  string `json:"type"`
}

// ContentPreviewRequest asks for a rendered HTML preview of a value.
type ContentPreviewRequest struct {
	Value string `json:"value" binding:"required"`
	Type  string `json:"type"`
}

// GroupContentByPage 将一个页面的内容行聚合为 section→key→value 结构。
func GroupContentByPage(items []DbContent) map[string]map[string]string {
	grouped := make(map[string]map[string]string)
	for _, item := range items {
		section, ok := grouped[item.Section]
		if !ok {
			section = make(map[string]string)
			grouped[item.Section] = section
		}
		section[item.Key] = item.Value
	}
	return grouped
}

// GroupContentBySection 将一个小节的内容行聚合为 key→value 结构。
func GroupContentBySection(items []DbContent) map[string]string {
	grouped := make(map[string]string)
	for _, item := range items {
		grouped[item.Key] = item.Value
	}
	return grouped
}

// ValidContentType reports whether value is one of the accepted type markers.
func ValidContentType(value string) bool {
	for _, t := range ContentTypes {
		if t == value {
			return true
		}
	}
	return false
}
