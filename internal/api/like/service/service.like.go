package likesvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	likemodels "meta_tube/internal/api/like/models"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
)

// LikeService là service quản lý lượt thích trên video, comment và tweet
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[likemodels.Like]
}

// NewLikeService tạo mới LikeService
func NewLikeService() (*LikeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[likemodels.Like](collection),
	}, nil
}

// ToggleVideoLike đảo trạng thái thích của user trên một video
func (s *LikeService) ToggleVideoLike(ctx context.Context, videoID, likedBy primitive.ObjectID) (likemodels.ToggleResult, error) {
	return s.toggle(ctx, "video", videoID, likedBy)
}

// ToggleCommentLike đảo trạng thái thích của user trên một comment
func (s *LikeService) ToggleCommentLike(ctx context.Context, commentID, likedBy primitive.ObjectID) (likemodels.ToggleResult, error) {
	return s.toggle(ctx, "comment", commentID, likedBy)
}

// ToggleTweetLike đảo trạng thái thích của user trên một tweet
func (s *LikeService) ToggleTweetLike(ctx context.Context, tweetID, likedBy primitive.ObjectID) (likemodels.ToggleResult, error) {
	return s.toggle(ctx, "tweet", tweetID, likedBy)
}

// toggle xóa like nếu đã tồn tại, ngược lại tạo mới.
// Hai request đồng thời được partial unique index (target, likedBy) chặn:
// insert trùng trả lỗi duplicate và được coi là đã thích.
func (s *LikeService) toggle(ctx context.Context, field string, targetID, likedBy primitive.ObjectID) (likemodels.ToggleResult, error) {
	filter := bson.M{field: targetID, "likedBy": likedBy}

	_, err := s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return likemodels.ToggleResult{Liked: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return likemodels.ToggleResult{}, err
	}

	like := likemodels.Like{LikedBy: likedBy}
	switch field {
	case "video":
		like.Video = &targetID
	case "comment":
		like.Comment = &targetID
	case "tweet":
		like.Tweet = &targetID
	}

	if _, err := s.InsertOne(ctx, like); err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			// Request đồng thời đã thích trước, trạng thái cuối vẫn là đã thích
			return likemodels.ToggleResult{Liked: true}, nil
		}
		return likemodels.ToggleResult{}, err
	}
	return likemodels.ToggleResult{Liked: true}, nil
}

// GetLikedVideos liệt kê các video user đã thích kèm thông tin chủ kênh, có phân trang
func (s *LikeService) GetLikedVideos(ctx context.Context, likedBy primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[videomodels.VideoDetail], error) {
	ownerStages := basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()

	videoPipeline := mongo.Pipeline{}
	videoPipeline = append(videoPipeline, ownerStages...)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"likedBy": likedBy,
			"video":   bson.M{"$exists": true},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
			"pipeline":     videoPipeline,
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	}

	return basesvc.AggregatePaginate[videomodels.VideoDetail](ctx, s.Collection(), pipeline, page, limit)
}
