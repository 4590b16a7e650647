package commentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	commentmodels "meta_tube/internal/api/comment/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/logger"
)

// CommentService là service quản lý bình luận trên video
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[commentmodels.Comment]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.Comment](collection),
	}, nil
}

// AddComment tạo bình luận mới trên video.
// Video phải tồn tại, không thì trả ErrNotFound.
func (s *CommentService) AddComment(ctx context.Context, videoID, ownerID primitive.ObjectID, content string) (commentmodels.Comment, error) {
	var zero commentmodels.Comment

	videosCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return zero, common.ErrNotFound
	}
	count, err := videosCol.CountDocuments(ctx, bson.M{"_id": videoID})
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if count == 0 {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Video không tồn tại", common.StatusNotFound, nil)
	}

	return s.InsertOne(ctx, commentmodels.Comment{
		Content: content,
		Video:   videoID,
		Owner:   ownerID,
	})
}

// GetVideoComments liệt kê bình luận của một video kèm số lượt thích, mới nhất trước, có phân trang
func (s *CommentService) GetVideoComments(ctx context.Context, videoID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[commentmodels.CommentDetail], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"video": videoID}}},
	}
	pipeline = append(pipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": global.MongoDB_ColNames.Likes,
			"let":  bson.M{"commentId": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$comment", "$$commentId"}},
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
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	)

	return basesvc.AggregatePaginate[commentmodels.CommentDetail](ctx, s.Collection(), pipeline, page, limit)
}

// UpdateComment sửa nội dung bình luận của chính người viết.
// Quyền sở hữu gộp vào filter: comment của người khác coi như không tồn tại.
func (s *CommentService) UpdateComment(ctx context.Context, commentID, ownerID primitive.ObjectID, content string) (commentmodels.Comment, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"content": content},
	}
	return s.UpdateOne(ctx, bson.M{"_id": commentID, "owner": ownerID}, update, nil)
}

// DeleteComment xóa bình luận của chính người viết kèm các like trên bình luận đó
func (s *CommentService) DeleteComment(ctx context.Context, commentID, ownerID primitive.ObjectID) error {
	if err := s.DeleteOne(ctx, bson.M{"_id": commentID, "owner": ownerID}); err != nil {
		return err
	}

	// Dọn like của comment, lỗi chỉ log vì comment đã xóa xong
	if likesCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes); exist {
		if _, err := likesCol.DeleteMany(ctx, bson.M{"comment": commentID}); err != nil {
			logger.GetAppLogger().WithField("comment_id", commentID.Hex()).WithError(err).Warn("Không xóa được like của comment")
		}
	}
	return nil
}
