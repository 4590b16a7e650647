// Package models - Test chuẩn hóa phân trang và tính toán các trường dẫn xuất của PaginateResult.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int64
		limit     int64
		wantPage  int64
		wantLimit int64
	}{
		{"giá trị hợp lệ giữ nguyên", 2, 20, 2, 20},
		{"page âm rơi về mặc định", -1, 20, DefaultPage, 20},
		{"page 0 rơi về mặc định", 0, 20, DefaultPage, 20},
		{"limit 0 rơi về mặc định", 1, 0, 1, DefaultLimit},
		{"limit âm rơi về mặc định", 1, -5, 1, DefaultLimit},
		{"limit vượt trần bị chặn", 1, 1000, 1, MaxLimit},
		{"limit đúng trần giữ nguyên", 1, MaxLimit, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := SanitizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginateResult(t *testing.T) {
	items := []string{"a", "b", "c"}
	result := NewPaginateResult(items, 2, 3, 10)

	assert.Equal(t, int64(2), result.Page)
	assert.Equal(t, int64(3), result.Limit)
	assert.Equal(t, int64(3), result.ItemCount)
	assert.Equal(t, int64(10), result.Total)
	// 10 mục, 3 mục/trang → 4 trang
	assert.Equal(t, int64(4), result.TotalPage)
	assert.True(t, result.HasPrev)
	assert.True(t, result.HasNext)
}

func TestNewPaginateResult_FirstAndLastPage(t *testing.T) {
	first := NewPaginateResult([]int{1, 2}, 1, 2, 4)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := NewPaginateResult([]int{3, 4}, 2, 2, 4)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
}

func TestNewPaginateResult_Empty(t *testing.T) {
	result := NewPaginateResult[string](nil, 1, 10, 0)

	// Items không bao giờ là nil để JSON luôn trả về mảng rỗng thay vì null
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.ItemCount)
	assert.Equal(t, int64(0), result.TotalPage)
	assert.False(t, result.HasPrev)
	assert.False(t, result.HasNext)
}

func TestNewPaginateResult_EmptyBeyondFirstPage(t *testing.T) {
	// Không có dữ liệu thì trang nào cũng không có trang trước
	result := NewPaginateResult[string](nil, 2, 10, 0)
	assert.False(t, result.HasPrev)
	assert.False(t, result.HasNext)
}

func TestNewPaginateResult_ExactDivision(t *testing.T) {
	// 10 mục, 5 mục/trang → đúng 2 trang, không dư
	result := NewPaginateResult([]int{1, 2, 3, 4, 5}, 2, 5, 10)
	assert.Equal(t, int64(2), result.TotalPage)
	assert.False(t, result.HasNext)
}
