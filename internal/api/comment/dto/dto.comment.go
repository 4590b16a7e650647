package commentdto

// CommentCreateInput là nội dung tạo bình luận mới
type CommentCreateInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000,no_xss"` // Nội dung bình luận
}

// CommentUpdateInput là nội dung sửa bình luận
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000,no_xss"` // Nội dung mới
}
