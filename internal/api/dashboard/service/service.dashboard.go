package dashboardsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	dashboardmodels "meta_tube/internal/api/dashboard/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
)

// DashboardService tổng hợp số liệu kênh từ các collection videos, subscriptions, likes, comments, tweets
type DashboardService struct {
	videos        *mongo.Collection
	subscriptions *mongo.Collection
	tweets        *mongo.Collection
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	videos, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	subscriptions, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	tweets, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &DashboardService{
		videos:        videos,
		subscriptions: subscriptions,
		tweets:        tweets,
	}, nil
}

// GetChannelStats tổng hợp số liệu của kênh: số video, tổng lượt xem,
// tổng người theo dõi, tổng lượt thích và bình luận trên mọi video, tổng bài đăng.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID primitive.ObjectID) (dashboardmodels.ChannelStats, error) {
	var stats dashboardmodels.ChannelStats

	// Gom view/like/comment theo video rồi cộng dồn trong một aggregate
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": channelID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": global.MongoDB_ColNames.Likes,
			"let":  bson.M{"videoId": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$video", "$$videoId"}},
				}}},
				bson.D{{Key: "$count", Value: "count"}},
			},
			"as": "likes",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": global.MongoDB_ColNames.Comments,
			"let":  bson.M{"videoId": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$video", "$$videoId"}},
				}}},
				bson.D{{Key: "$count", Value: "count"}},
			},
			"as": "comments",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likeCount": bson.M{"$ifNull": bson.A{
				bson.M{"$first": "$likes.count"},
				0,
			}},
			"commentCount": bson.M{"$ifNull": bson.A{
				bson.M{"$first": "$comments.count"},
				0,
			}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalVideos":   bson.M{"$sum": 1},
			"totalViews":    bson.M{"$sum": "$views"},
			"totalLikes":    bson.M{"$sum": "$likeCount"},
			"totalComments": bson.M{"$sum": "$commentCount"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":           0,
			"totalVideos":   1,
			"totalViews":    1,
			"totalLikes":    1,
			"totalComments": 1,
		}}},
	}

	result, err := basesvc.AggregateOne[dashboardmodels.ChannelStats](ctx, s.videos, pipeline)
	if err != nil {
		// Kênh chưa có video nào: mọi số liệu video bằng 0
		if !errors.Is(err, common.ErrNotFound) {
			return stats, err
		}
	} else {
		stats = result
	}

	subscribers, err := s.subscriptions.CountDocuments(ctx, bson.M{"channel": channelID})
	if err != nil {
		return stats, common.ConvertMongoError(err)
	}
	stats.TotalSubscribers = subscribers

	tweets, err := s.tweets.CountDocuments(ctx, bson.M{"owner": channelID})
	if err != nil {
		return stats, common.ConvertMongoError(err)
	}
	stats.TotalTweets = tweets

	return stats, nil
}

// GetChannelVideos liệt kê toàn bộ video của kênh (kể cả chưa công khai)
// kèm số lượt thích từng video, mới nhất trước
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[dashboardmodels.ChannelVideo], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": channelID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": global.MongoDB_ColNames.Likes,
			"let":  bson.M{"videoId": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$video", "$$videoId"}},
				}}},
				bson.D{{Key: "$count", Value: "count"}},
			},
			"as": "likes",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likeCount": bson.M{"$ifNull": bson.A{
				bson.M{"$first": "$likes.count"},
				0,
			}},
		}}},
	}
	return basesvc.AggregatePaginate[dashboardmodels.ChannelVideo](ctx, s.videos, pipeline, page, limit)
}
