package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like đại diện cho một lượt thích. Đúng một trong ba trường Video/Comment/Tweet được set,
// ràng buộc bởi partial unique index trên từng cặp (target, likedBy).
type Like struct {
	ID      primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`       // ID của like
	Video   *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`     // Video được thích
	Comment *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"` // Comment được thích
	Tweet   *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`     // Tweet được thích
	LikedBy primitive.ObjectID  `json:"likedBy" bson:"likedBy"`                     // Người thích

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// ToggleResult là kết quả của thao tác toggle like
type ToggleResult struct {
	Liked bool `json:"isLiked"` // true nếu sau thao tác đang ở trạng thái đã thích
}
