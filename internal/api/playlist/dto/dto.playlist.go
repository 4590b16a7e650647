package playlistdto

// PlaylistCreateInput là nội dung tạo playlist mới
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100,no_xss"`        // Tên playlist
	Description string `json:"description" validate:"omitempty,max=1000,no_xss"`    // Mô tả
}

// PlaylistUpdateInput là nội dung sửa playlist
type PlaylistUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=100,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000,no_xss"`
}
