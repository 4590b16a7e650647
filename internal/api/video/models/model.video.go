package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "meta_tube/internal/api/user/models"
)

// Video đại diện cho một video do user đăng lên nền tảng
type Video struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của video

	// ===== MEDIA =====
	VideoFile   string  `json:"videoFile" bson:"videoFile" validate:"required"` // URL file video trên dịch vụ lưu trữ
	VideoFileID string  `json:"-" bson:"videoFileId,omitempty"`                 // Public ID file video (dùng để xóa)
	Thumbnail   string  `json:"thumbnail" bson:"thumbnail"`                     // URL thumbnail
	ThumbnailID string  `json:"-" bson:"thumbnailId,omitempty"`                 // Public ID thumbnail
	Duration    float64 `json:"duration" bson:"duration"`                       // Thời lượng (giây), do dịch vụ lưu trữ trả về

	// ===== CONTENT =====
	Title       string `json:"title" bson:"title" index:"text" validate:"required"` // Tiêu đề
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả

	// ===== OWNERSHIP =====
	Owner primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"` // Kênh sở hữu video

	// ===== STATE =====
	Views       int64 `json:"views" bson:"views"`                             // Lượt xem
	IsPublished bool  `json:"isPublished" bson:"isPublished" default:"true"` // Video có công khai không

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// VideoDetail là video kèm thông tin chủ kênh (kết quả aggregate với $lookup owner)
type VideoDetail struct {
	ID          primitive.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	VideoFile   string                    `json:"videoFile" bson:"videoFile"`
	Thumbnail   string                    `json:"thumbnail" bson:"thumbnail"`
	Duration    float64                   `json:"duration" bson:"duration"`
	Title       string                    `json:"title" bson:"title"`
	Description string                    `json:"description,omitempty" bson:"description,omitempty"`
	Owner       *usermodels.PublicProfile `json:"owner" bson:"owner"` // null khi chủ kênh đã bị xóa
	Views       int64                     `json:"views" bson:"views"`
	IsPublished bool                      `json:"isPublished" bson:"isPublished"`
	CreatedAt   int64                     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                     `json:"updatedAt" bson:"updatedAt"`
}
