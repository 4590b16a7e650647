package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "meta_tube/internal/api/user/models"
	videomodels "meta_tube/internal/api/video/models"
)

// Playlist đại diện cho một danh sách phát do user tạo
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`                  // ID của playlist
	Name        string               `json:"name" bson:"name" validate:"required"`               // Tên playlist
	Description string               `json:"description,omitempty" bson:"description,omitempty"` // Mô tả
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`                               // Các video trong playlist, theo thứ tự thêm vào
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single:1"`                // Người tạo playlist

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// PlaylistSummary là playlist kèm số video và tổng lượt xem (kết quả aggregate cho listing)
type PlaylistSummary struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	VideoCount  int64              `json:"videoCount" bson:"videoCount"`
	TotalViews  int64              `json:"totalViews" bson:"totalViews"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistDetail là playlist kèm chi tiết video và thông tin người tạo (kết quả aggregate)
type PlaylistDetail struct {
	ID          primitive.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string                    `json:"name" bson:"name"`
	Description string                    `json:"description,omitempty" bson:"description,omitempty"`
	Videos      []videomodels.VideoDetail `json:"videos" bson:"videos"`
	Owner       *usermodels.PublicProfile `json:"owner" bson:"owner"` // null khi người tạo đã bị xóa
	CreatedAt   int64                     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                     `json:"updatedAt" bson:"updatedAt"`
}
