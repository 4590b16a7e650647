package videosvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	videodto "meta_tube/internal/api/video/dto"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/logger"
	"meta_tube/internal/storage"
)

// VideoService là service quản lý video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[videomodels.Video](collection),
	}, nil
}

// allowedSortFields whitelist các trường được phép sắp xếp khi liệt kê video
var allowedSortFields = map[string]bool{
	"createdAt": true,
	"views":     true,
	"title":     true,
	"duration":  true,
}

// GetAllVideos liệt kê video công khai có tìm kiếm, sắp xếp và phân trang.
// opts.UserID (hex) giới hạn kết quả theo một kênh.
func (s *VideoService) GetAllVideos(ctx context.Context, opts videodto.VideoListOptions) (*basemodels.PaginateResult[videomodels.VideoDetail], error) {
	match := bson.M{"isPublished": true}
	if opts.UserID != "" {
		ownerID, err := primitive.ObjectIDFromHex(opts.UserID)
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("userId '%s' không đúng định dạng MongoDB ObjectID", opts.UserID),
				common.StatusBadRequest,
				nil,
			)
		}
		match["owner"] = ownerID
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
	}
	if search := basesvc.SearchMatch(opts.Query, "title", "description"); search != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: search}})
	}
	pipeline = append(pipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()...)
	pipeline = append(pipeline, basesvc.SortStage(opts.SortBy, opts.SortType, allowedSortFields, "createdAt"))

	return basesvc.AggregatePaginate[videomodels.VideoDetail](ctx, s.Collection(), pipeline, opts.Page, opts.Limit)
}

// GetVideoById lấy chi tiết video kèm thông tin chủ kênh và tăng lượt xem.
// Video chưa công khai chỉ chủ kênh xem được.
func (s *VideoService) GetVideoById(ctx context.Context, videoID, viewerID primitive.ObjectID) (videomodels.VideoDetail, error) {
	var zero videomodels.VideoDetail

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": videoID}}},
	}
	pipeline = append(pipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()...)

	detail, err := basesvc.AggregateOne[videomodels.VideoDetail](ctx, s.Collection(), pipeline)
	if err != nil {
		return zero, err
	}

	if !detail.IsPublished && (detail.Owner == nil || detail.Owner.ID != viewerID) {
		return zero, common.ErrNotFound
	}

	// Tăng lượt xem, lỗi không chặn việc trả kết quả
	if _, err := s.UpdateById(ctx, videoID, &basesvc.UpdateData{
		Inc: map[string]interface{}{"views": 1},
	}); err != nil {
		logger.GetAppLogger().WithField("video_id", videoID.Hex()).WithError(err).Warn("Không tăng được lượt xem video")
	} else {
		detail.Views++
	}

	return detail, nil
}

// PublishVideo tạo video mới từ kết quả upload trên dịch vụ lưu trữ
func (s *VideoService) PublishVideo(ctx context.Context, ownerID primitive.ObjectID, input *videodto.VideoPublishInput, videoRes, thumbRes *storage.UploadResult) (videomodels.Video, error) {
	video := videomodels.Video{
		Title:       input.Title,
		Description: input.Description,
		VideoFile:   videoRes.URL,
		VideoFileID: videoRes.PublicID,
		Duration:    videoRes.Duration,
		Owner:       ownerID,
		IsPublished: true,
	}
	if thumbRes != nil {
		video.Thumbnail = thumbRes.URL
		video.ThumbnailID = thumbRes.PublicID
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		return created, err
	}

	logger.GetAuditLogger().
		WithField("video_id", created.ID.Hex()).
		WithField("owner", ownerID.Hex()).
		Info("Đăng video mới")
	return created, nil
}

// ownedVideoFilter khớp video theo _id kèm chủ kênh.
// Mọi thao tác ghi của chủ kênh dùng chung filter này,
// video của người khác coi như không tồn tại.
func ownedVideoFilter(videoID, ownerID primitive.ObjectID) bson.M {
	return bson.M{"_id": videoID, "owner": ownerID}
}

// UpdateVideo cập nhật metadata video của chính chủ kênh.
// thumbRes khác nil khi có thumbnail mới; trả về public ID thumbnail cũ để caller xóa best-effort.
func (s *VideoService) UpdateVideo(ctx context.Context, videoID, ownerID primitive.ObjectID, input *videodto.VideoUpdateInput, thumbRes *storage.UploadResult) (videomodels.Video, string, error) {
	var zero videomodels.Video

	current, err := s.FindOne(ctx, ownedVideoFilter(videoID, ownerID), nil)
	if err != nil {
		return zero, "", err
	}

	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}

	var oldThumbID string
	if thumbRes != nil {
		oldThumbID = current.ThumbnailID
		set["thumbnail"] = thumbRes.URL
		set["thumbnailId"] = thumbRes.PublicID
	}

	if len(set) == 0 {
		return zero, "", common.ErrInvalidInput
	}

	// Quyền sở hữu lặp lại trong filter ghi, không dựa vào lần đọc phía trên
	updated, err := s.UpdateOne(ctx, ownedVideoFilter(videoID, ownerID), &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return zero, "", err
	}
	return updated, oldThumbID, nil
}

// DeleteVideo xóa video của chính chủ kênh cùng dữ liệu liên quan (comment, like, tham chiếu playlist).
// Trả về video đã xóa để caller dọn media trên dịch vụ lưu trữ best-effort.
func (s *VideoService) DeleteVideo(ctx context.Context, videoID, ownerID primitive.ObjectID) (videomodels.Video, error) {
	deleted, err := s.FindOneAndDelete(ctx, ownedVideoFilter(videoID, ownerID), nil)
	if err != nil {
		return deleted, err
	}

	// Dọn dữ liệu liên quan, lỗi chỉ log vì video đã xóa xong
	s.cleanupVideoReferences(ctx, videoID)

	logger.GetAuditLogger().
		WithField("video_id", videoID.Hex()).
		WithField("owner", ownerID.Hex()).
		Info("Xóa video")
	return deleted, nil
}

// cleanupVideoReferences xóa comment, like và gỡ video khỏi các playlist sau khi video bị xóa
func (s *VideoService) cleanupVideoReferences(ctx context.Context, videoID primitive.ObjectID) {
	log := logger.GetAppLogger().WithField("video_id", videoID.Hex())

	if col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments); exist {
		if _, err := col.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
			log.WithError(err).Warn("Không xóa được comment của video")
		}
	}
	if col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes); exist {
		if _, err := col.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
			log.WithError(err).Warn("Không xóa được like của video")
		}
	}
	if col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists); exist {
		if _, err := col.UpdateMany(ctx, bson.M{"videos": videoID}, bson.M{"$pull": bson.M{"videos": videoID}}); err != nil {
			log.WithError(err).Warn("Không gỡ được video khỏi playlist")
		}
	}
}

// TogglePublish đảo trạng thái công khai của video (chỉ chủ kênh)
func (s *VideoService) TogglePublish(ctx context.Context, videoID, ownerID primitive.ObjectID) (videomodels.Video, error) {
	// Update dạng pipeline để đảo giá trị hiện tại trong một round-trip
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{"isPublished": bson.M{"$not": "$isPublished"}}}},
	}
	return s.FindOneAndUpdate(ctx, ownedVideoFilter(videoID, ownerID), update, nil)
}
