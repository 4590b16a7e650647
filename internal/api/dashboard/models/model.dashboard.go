package models

import (
	videomodels "meta_tube/internal/api/video/models"
)

// ChannelStats là số liệu tổng hợp của một kênh
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos" bson:"totalVideos"`           // Tổng số video
	TotalViews       int64 `json:"totalViews" bson:"totalViews"`             // Tổng lượt xem trên mọi video
	TotalSubscribers int64 `json:"totalSubscribers" bson:"totalSubscribers"` // Tổng người theo dõi
	TotalLikes       int64 `json:"totalLikes" bson:"totalLikes"`             // Tổng lượt thích trên mọi video
	TotalComments    int64 `json:"totalComments" bson:"totalComments"`       // Tổng bình luận trên mọi video
	TotalTweets      int64 `json:"totalTweets" bson:"totalTweets"`           // Tổng bài đăng của kênh
}

// ChannelVideo là video của kênh kèm số lượt thích (kết quả aggregate cho dashboard)
type ChannelVideo struct {
	videomodels.Video `bson:",inline"`
	LikeCount         int64 `json:"likeCount" bson:"likeCount"`
}
