package videodto

// VideoPublishInput là phần text của form đăng video (file nhận qua multipart)
type VideoPublishInput struct {
	Title       string `json:"title" form:"title" validate:"required,min=1,max=200,no_xss"`         // Tiêu đề video
	Description string `json:"description" form:"description" validate:"omitempty,max=5000,no_xss"` // Mô tả video
}

// VideoCreateInput dùng cho CRUD chung (tạo video từ metadata có sẵn)
type VideoCreateInput struct {
	Title       string  `json:"title" validate:"required,min=1,max=200,no_xss"`       // Tiêu đề
	Description string  `json:"description" validate:"omitempty,max=5000,no_xss"`     // Mô tả
	VideoFile   string  `json:"videoFile" validate:"required,url"`                    // URL file video
	Thumbnail   string  `json:"thumbnail" validate:"omitempty,url"`                   // URL thumbnail
	Duration    float64 `json:"duration" validate:"omitempty,gte=0"`                  // Thời lượng (giây)
	Owner       string  `json:"owner" validate:"required" transform:"str_objectid"`   // Kênh sở hữu - convert sang ObjectID
}

// VideoUpdateInput dùng cho cập nhật metadata video
type VideoUpdateInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,max=5000,no_xss"`
}

// VideoListOptions là tham số truy vấn danh sách video công khai
type VideoListOptions struct {
	Query    string // Từ khóa tìm kiếm trên title/description
	SortBy   string // Trường sắp xếp (whitelist)
	SortType string // asc / desc
	UserID   string // Lọc theo kênh (hex ObjectID, optional)
	Page     int64
	Limit    int64
}
