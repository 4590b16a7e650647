package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "meta_tube/internal/api/user/models"
)

// Comment đại diện cho một bình luận trên video
type Comment struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`              // ID của comment
	Content string             `json:"content" bson:"content" validate:"required"`     // Nội dung bình luận
	Video   primitive.ObjectID `json:"video" bson:"video" index:"single:1"`            // Video được bình luận
	Owner   primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"`            // Người bình luận

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// CommentDetail là comment kèm thông tin người bình luận (kết quả aggregate với $lookup owner)
type CommentDetail struct {
	ID        primitive.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string                    `json:"content" bson:"content"`
	Video     primitive.ObjectID        `json:"video" bson:"video"`
	Owner     *usermodels.PublicProfile `json:"owner" bson:"owner"` // null khi người bình luận đã bị xóa
	LikeCount int64                     `json:"likeCount" bson:"likeCount"`
	CreatedAt int64                     `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                     `json:"updatedAt" bson:"updatedAt"`
}
