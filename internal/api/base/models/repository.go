// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang, đếm).
package models

const (
	// DefaultPage là trang mặc định khi client không truyền hoặc truyền giá trị không hợp lệ
	DefaultPage int64 = 1
	// DefaultLimit là số mục mỗi trang mặc định
	DefaultLimit int64 = 10
	// MaxLimit là giới hạn trên của limit, chặn client kéo quá nhiều dữ liệu một lần
	MaxLimit int64 = 100
)

// SanitizePagination chuẩn hóa page và limit về khoảng hợp lệ
func SanitizePagination(page, limit int64) (int64, int64) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
	// Có trang trước không
	HasPrev bool `json:"hasPrev" bson:"hasPrev"`
	// Có trang sau không
	HasNext bool `json:"hasNext" bson:"hasNext"`
}

// NewPaginateResult tính toán các trường dẫn xuất (totalPage, hasPrev, hasNext) từ dữ liệu trang
func NewPaginateResult[T any](items []T, page, limit, total int64) *PaginateResult[T] {
	if items == nil {
		items = []T{}
	}
	var totalPage int64
	if limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
		HasPrev:   page > 1 && total > 0,
		HasNext:   page < totalPage,
	}
}

// CountResult đại diện cho kết quả đếm
type CountResult struct {
	// Tổng số lượng mục
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
