package usersvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	usermodels "meta_tube/internal/api/user/models"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/global"
)

// GetChannelProfile lấy hồ sơ kênh theo username kèm số liệu theo dõi.
// viewerID (user đang đăng nhập) dùng để tính isSubscribed; NilObjectID khi chưa đăng nhập.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (usermodels.ChannelProfile, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"username": username}}},
		// Người theo dõi kênh này
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		// Các kênh mà user này đang theo dõi
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"subscriberCount": bson.M{"$size": "$subscribers"},
			"subscribedCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed": bson.M{
				"$cond": bson.M{
					"if":   bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
					"then": true,
					"else": false,
				},
			},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"username":        1,
			"email":           1,
			"fullName":        1,
			"avatar":          1,
			"coverImage":      1,
			"subscriberCount": 1,
			"subscribedCount": 1,
			"isSubscribed":    1,
			"createdAt":       1,
		}}},
	}

	return basesvc.AggregateOne[usermodels.ChannelProfile](ctx, s.Collection(), pipeline)
}

// maxWatchHistory giới hạn độ dài lịch sử xem của mỗi user
const maxWatchHistory = 100

// AddWatchHistory ghi nhận user vừa xem video: đưa video lên đầu lịch sử,
// loại bản ghi trùng và cắt bớt khi vượt giới hạn.
func (s *UserService) AddWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error {
	// Gỡ entry cũ (nếu có) để video luôn nổi lên đầu
	if _, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"watchHistory": videoID},
	}); err != nil {
		return err
	}

	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"watchHistory": bson.M{
				"$each":     bson.A{videoID},
				"$position": 0,
				"$slice":    maxWatchHistory,
			},
		},
	})
	return err
}

// watchHistoryPipeline dựng pipeline trả về video trong lịch sử xem đúng thứ tự lưu.
// $lookup theo mảng không giữ thứ tự phần tử, nên tách từng phần tử kèm chỉ số
// trước khi lookup rồi sắp xếp lại theo chỉ số đó.
func watchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	videoPipeline := mongo.Pipeline{}
	videoPipeline = append(videoPipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()...)

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": userID}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":              "$watchHistory",
			"includeArrayIndex": "historyIndex",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "video",
			"pipeline":     videoPipeline,
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "historyIndex", Value: 1}}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	}
}

// GetWatchHistory trả về các video trong lịch sử xem của user kèm thông tin chủ kênh,
// video xem gần nhất đứng đầu
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[videomodels.VideoDetail], error) {
	return basesvc.AggregatePaginate[videomodels.VideoDetail](ctx, s.Collection(), watchHistoryPipeline(userID), page, limit)
}
