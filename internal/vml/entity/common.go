// Package entity 定义 API 层的请求和响应结构
package entity

import "fmt"

// PageRequest 分页查询参数
// limit 范围 1-100，默认 20；offset >= 0，默认 0
type PageRequest struct {
	Limit  int `form:"limit,default=20" json:"limit"`
	Offset int `form:"offset,default=0" json:"offset"`
}

// IsValid 校验分页参数
func (p *PageRequest) IsValid() error {
	if p.Limit < 1 || p.Limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100, got %d", p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must be >= 0, got %d", p.Offset)
	}
	return nil
}

// PaginatedResponse 分页响应
// next_offset 在 offset+limit >= total 时为 null，否则为 offset+limit
type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	NextOffset *int  `json:"next_offset"`
}

// NewPaginatedResponse 构造分页响应
func NewPaginatedResponse[T any](items []T, total int64, limit, offset int) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	var nextOffset *int
	if int64(offset+limit) < total {
		next := offset + limit
		nextOffset = &next
	}
	return &PaginatedResponse[T]{
		Items:      items,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		NextOffset: nextOffset,
	}
}
