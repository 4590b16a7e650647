package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "meta_tube/internal/api/user/models"
)

// Subscription đại diện cho việc một user theo dõi một kênh.
// Cặp (subscriber, channel) là duy nhất, ràng buộc bởi unique index.
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của subscription
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`      // Người theo dõi
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`            // Kênh được theo dõi

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// SubscriberEntry là một người theo dõi kênh (kết quả aggregate với $lookup users)
type SubscriberEntry struct {
	ID           primitive.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber   *usermodels.PublicProfile `json:"subscriber" bson:"subscriber"` // null khi user đã bị xóa
	SubscribedAt int64                     `json:"subscribedAt" bson:"createdAt"`
}

// ChannelEntry là một kênh mà user đang theo dõi (kết quả aggregate với $lookup users)
type ChannelEntry struct {
	ID              primitive.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	Channel         *usermodels.PublicProfile `json:"channel" bson:"channel"` // null khi kênh đã bị xóa
	SubscriberCount int64                     `json:"subscriberCount" bson:"subscriberCount"`
	SubscribedAt    int64                     `json:"subscribedAt" bson:"createdAt"`
}

// ToggleResult là kết quả của thao tác toggle theo dõi kênh
type ToggleResult struct {
	Subscribed bool `json:"subscribed"` // true nếu sau thao tác đang theo dõi
}
