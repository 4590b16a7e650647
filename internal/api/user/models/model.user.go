package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho người dùng, đồng thời là kênh (channel) của nền tảng.
// Mỗi user có thể đăng video, tweet, playlist và được user khác theo dõi.
type User struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của user

	// ===== IDENTITY =====
	Username string `json:"username" bson:"username" index:"unique" validate:"required"` // Tên đăng nhập, duy nhất, lowercase
	Email    string `json:"email" bson:"email" index:"unique" validate:"required,email"` // Email, duy nhất
	FullName string `json:"fullName" bson:"fullName" index:"text"`                       // Tên hiển thị

	// ===== MEDIA =====
	Avatar        string `json:"avatar,omitempty" bson:"avatar,omitempty"`               // URL ảnh đại diện
	AvatarID      string `json:"-" bson:"avatarId,omitempty"`                            // Public ID của avatar trên dịch vụ lưu trữ
	CoverImage    string `json:"coverImage,omitempty" bson:"coverImage,omitempty"`       // URL ảnh bìa kênh
	CoverImageID  string `json:"-" bson:"coverImageId,omitempty"`                        // Public ID của ảnh bìa trên dịch vụ lưu trữ

	// ===== CREDENTIALS =====
	Password     string `json:"-" bson:"password"`               // Mật khẩu đã hash (bcrypt), không bao giờ trả về client
	RefreshToken string `json:"-" bson:"refreshToken,omitempty"` // Refresh token hiện hành, không trả về client

	// ===== ACTIVITY =====
	WatchHistory []primitive.ObjectID `json:"watchHistory,omitempty" bson:"watchHistory,omitempty"` // Danh sách video đã xem, mới nhất ở đầu

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// PublicProfile là phần thông tin công khai của user (dùng trong $lookup owner)
type PublicProfile struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// ChannelProfile là hồ sơ kênh kèm số liệu theo dõi, trả về từ truy vấn aggregate
type ChannelProfile struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username        string             `json:"username" bson:"username"`
	Email           string             `json:"email" bson:"email"`
	FullName        string             `json:"fullName" bson:"fullName"`
	Avatar          string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CoverImage      string             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	SubscriberCount int64              `json:"subscriberCount" bson:"subscriberCount"` // Số người theo dõi kênh
	SubscribedCount int64              `json:"subscribedCount" bson:"subscribedCount"` // Số kênh user này đang theo dõi
	IsSubscribed    bool               `json:"isSubscribed" bson:"isSubscribed"`       // Viewer hiện tại có đang theo dõi kênh không
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
}
