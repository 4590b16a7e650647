package likedto

// LikeCreateInput dùng cho CRUD chung (tạo like từ metadata có sẵn).
// Đúng một trong ba trường video/comment/tweet được set.
type LikeCreateInput struct {
	Video   string `json:"video,omitempty" transform:"str_objectid_ptr,optional"`   // Video được thích
	Comment string `json:"comment,omitempty" transform:"str_objectid_ptr,optional"` // Comment được thích
	Tweet   string `json:"tweet,omitempty" transform:"str_objectid_ptr,optional"`   // Tweet được thích
	LikedBy string `json:"likedBy" validate:"required" transform:"str_objectid"`    // Người thích
}

// LikeUpdateInput: like không có trường nào sửa được, chỉ tạo/xóa
type LikeUpdateInput struct{}
