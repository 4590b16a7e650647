package tweetsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	tweetmodels "meta_tube/internal/api/tweet/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/logger"
)

// TweetService là service quản lý bài đăng ngắn trên kênh
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[tweetmodels.Tweet]
}

// NewTweetService tạo mới TweetService
func NewTweetService() (*TweetService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[tweetmodels.Tweet](collection),
	}, nil
}

// CreateTweet tạo tweet mới trên kênh của user
func (s *TweetService) CreateTweet(ctx context.Context, ownerID primitive.ObjectID, content string) (tweetmodels.Tweet, error) {
	return s.InsertOne(ctx, tweetmodels.Tweet{
		Content: content,
		Owner:   ownerID,
	})
}

// GetUserTweets liệt kê tweet của một kênh, mới nhất trước, có phân trang
func (s *TweetService) GetUserTweets(ctx context.Context, ownerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[tweetmodels.TweetDetail], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()...)

	return basesvc.AggregatePaginate[tweetmodels.TweetDetail](ctx, s.Collection(), pipeline, page, limit)
}

// UpdateTweet sửa nội dung tweet của chính kênh đăng.
// Quyền sở hữu gộp vào filter: tweet của người khác coi như không tồn tại.
func (s *TweetService) UpdateTweet(ctx context.Context, tweetID, ownerID primitive.ObjectID, content string) (tweetmodels.Tweet, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"content": content},
	}
	return s.UpdateOne(ctx, bson.M{"_id": tweetID, "owner": ownerID}, update, nil)
}

// DeleteTweet xóa tweet của chính kênh đăng kèm các like trên tweet đó
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID, ownerID primitive.ObjectID) error {
	if err := s.DeleteOne(ctx, bson.M{"_id": tweetID, "owner": ownerID}); err != nil {
		return err
	}

	// Dọn like của tweet, lỗi chỉ log vì tweet đã xóa xong
	if likesCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes); exist {
		if _, err := likesCol.DeleteMany(ctx, bson.M{"tweet": tweetID}); err != nil {
			logger.GetAppLogger().WithField("tweet_id", tweetID.Hex()).WithError(err).Warn("Không xóa được like của tweet")
		}
	}
	return nil
}
