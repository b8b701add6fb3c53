package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray 以 JSON 文本格式存储字符串切片。
type StringArray []string

// Value 实现 driver.Valuer 接口。
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan 实现 sql.Scanner 接口。
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*a = []string{}
			return nil
		}
		return json.Unmarshal(v, (*[]string)(a))
	case string:
		if v == "" {
			*a = []string{}
			return nil
		}
		return json.Unmarshal([]byte(v), (*[]string)(a))
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}
}

// Meta 包含分页元数据。
type Meta struct {
	Page     int64 `json:"page"`
	PageSize int64 `json:"page_size"`
	Total    int64 `json:"total"`
}

// Pagination is the envelope returned by admin list endpoints.
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// MetaToPagination converts repository paging metadata into the response envelope.
func MetaToPagination(meta *Meta) Pagination {
	if meta == nil {
		return Pagination{Page: 1, Limit: 20}
	}
	p := Pagination{
		Page:  meta.Page,
		Limit: meta.PageSize,
		Total: meta.Total,
	}
	if p.Limit > 0 {
		p.Pages = (p.Total + p.Limit - 1) / p.Limit
	}
	return p
}

// AdminListQuery 包含带状态过滤的分页参数。
type AdminListQuery struct {
	Page   int64  `form:"page"`
	Limit  int64  `form:"limit"`
	Status string `form:"status"`
}
