package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "meta_tube/internal/api/user/models"
)

// Tweet đại diện cho một bài đăng ngắn trên kênh
type Tweet struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`          // ID của tweet
	Content string             `json:"content" bson:"content" validate:"required"` // Nội dung
	Owner   primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"`        // Kênh đăng tweet

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// TweetDetail là tweet kèm thông tin kênh đăng (kết quả aggregate với $lookup owner)
type TweetDetail struct {
	ID        primitive.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string                    `json:"content" bson:"content"`
	Owner     *usermodels.PublicProfile `json:"owner" bson:"owner"` // null khi kênh đã bị xóa
	CreatedAt int64                     `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                     `json:"updatedAt" bson:"updatedAt"`
}
