package playlistsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	playlistdto "meta_tube/internal/api/playlist/dto"
	playlistmodels "meta_tube/internal/api/playlist/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
)

// PlaylistService là service quản lý danh sách phát
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[playlistmodels.Playlist]
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[playlistmodels.Playlist](collection),
	}, nil
}

// CreatePlaylist tạo playlist mới cho user
func (s *PlaylistService) CreatePlaylist(ctx context.Context, ownerID primitive.ObjectID, input *playlistdto.PlaylistCreateInput) (playlistmodels.Playlist, error) {
	return s.InsertOne(ctx, playlistmodels.Playlist{
		Name:        input.Name,
		Description: input.Description,
		Videos:      []primitive.ObjectID{},
		Owner:       ownerID,
	})
}

// GetUserPlaylists liệt kê playlist của một user kèm số video và tổng lượt xem,
// mới nhất trước, có phân trang
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, ownerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[playlistmodels.PlaylistSummary], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDocs",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"videoCount": bson.M{"$size": "$videos"},
			"totalViews": bson.M{"$sum": "$videoDocs.views"},
		}}},
	}
	return basesvc.AggregatePaginate[playlistmodels.PlaylistSummary](ctx, s.Collection(), pipeline, page, limit)
}

// GetPlaylistById lấy chi tiết playlist kèm chi tiết video và thông tin người tạo
func (s *PlaylistService) GetPlaylistById(ctx context.Context, playlistID primitive.ObjectID) (playlistmodels.PlaylistDetail, error) {
	videoOwnerStages := basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()

	videoPipeline := mongo.Pipeline{}
	videoPipeline = append(videoPipeline, videoOwnerStages...)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": playlistID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
			"pipeline":     videoPipeline,
		}}},
	}
	pipeline = append(pipeline, basesvc.OwnerLookup(global.MongoDB_ColNames.Users, "owner", "owner").Stages()...)

	return basesvc.AggregateOne[playlistmodels.PlaylistDetail](ctx, s.Collection(), pipeline)
}

// UpdatePlaylist sửa tên/mô tả playlist của chính người tạo
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistID, ownerID primitive.ObjectID, input *playlistdto.PlaylistUpdateInput) (playlistmodels.Playlist, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		var zero playlistmodels.Playlist
		return zero, common.ErrInvalidInput
	}

	return s.UpdateOne(ctx, bson.M{"_id": playlistID, "owner": ownerID}, &basesvc.UpdateData{Set: set}, nil)
}

// DeletePlaylist xóa playlist của chính người tạo
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, ownerID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": playlistID, "owner": ownerID})
}

// addVideoFilter chỉ khớp playlist của owner chưa chứa video.
// Điều kiện thành viên nằm trong filter để matched = 0 phân biệt được
// với trường hợp update không đổi dữ liệu (updatedAt luôn bị set).
func addVideoFilter(playlistID, ownerID, videoID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":    playlistID,
		"owner":  ownerID,
		"videos": bson.M{"$ne": videoID},
	}
}

// removeVideoFilter chỉ khớp playlist của owner đang chứa video
func removeVideoFilter(playlistID, ownerID, videoID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":    playlistID,
		"owner":  ownerID,
		"videos": videoID,
	}
}

// resolveMembershipMiss phân loại khi update không khớp document nào:
// playlist không tồn tại (hoặc không thuộc owner) trả ErrNotFound,
// ngược lại là lỗi nghiệp vụ về trạng thái video trong playlist.
func (s *PlaylistService) resolveMembershipMiss(ctx context.Context, playlistID, ownerID primitive.ObjectID, message string) error {
	count, err := s.Collection().CountDocuments(ctx, bson.M{"_id": playlistID, "owner": ownerID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.ErrNotFound
	}
	return common.NewError(common.ErrCodeBusinessOperation, message, common.StatusBadRequest, nil)
}

// AddVideo thêm video vào playlist của chính người tạo.
// Playlist đã chứa video thì báo lỗi nghiệp vụ thay vì ghi đè.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, ownerID, videoID primitive.ObjectID) (playlistmodels.Playlist, error) {
	var zero playlistmodels.Playlist

	result, err := s.Collection().UpdateOne(ctx,
		addVideoFilter(playlistID, ownerID, videoID),
		bson.M{
			"$addToSet": bson.M{"videos": videoID},
			"$set":      bson.M{"updatedAt": time.Now().UnixMilli()},
		},
	)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return zero, s.resolveMembershipMiss(ctx, playlistID, ownerID, "Video đã có trong playlist")
	}

	return s.FindOneById(ctx, playlistID)
}

// RemoveVideo gỡ video khỏi playlist của chính người tạo.
// Video không nằm trong playlist thì báo lỗi nghiệp vụ.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, ownerID, videoID primitive.ObjectID) (playlistmodels.Playlist, error) {
	var zero playlistmodels.Playlist

	result, err := s.Collection().UpdateOne(ctx,
		removeVideoFilter(playlistID, ownerID, videoID),
		bson.M{
			"$pull": bson.M{"videos": videoID},
			"$set":  bson.M{"updatedAt": time.Now().UnixMilli()},
		},
	)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return zero, s.resolveMembershipMiss(ctx, playlistID, ownerID, "Video không nằm trong playlist")
	}

	return s.FindOneById(ctx, playlistID)
}
