package playlisthdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_tube/internal/api/base/handler"
	playlistdto "meta_tube/internal/api/playlist/dto"
	playlistmodels "meta_tube/internal/api/playlist/models"
	playlistsvc "meta_tube/internal/api/playlist/service"
	"meta_tube/internal/common"
)

// PlaylistHandler xử lý các request liên quan đến danh sách phát
type PlaylistHandler struct {
	*basehdl.BaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput]
	PlaylistService *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo mới PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %v", err)
	}
	hdl := &PlaylistHandler{PlaylistService: playlistService}
	hdl.BaseHandler = basehdl.NewBaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput](playlistService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreatePlaylist tạo playlist mới cho user đang đăng nhập
// @Router /playlists [post]
func (h *PlaylistHandler) HandleCreatePlaylist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.PlaylistService.CreatePlaylist(c.Context(), ownerID, &input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleGetUserPlaylists liệt kê playlist của một user (phân trang)
// @Router /playlists/user/:userId [get]
func (h *PlaylistHandler) HandleGetUserPlaylists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := parseObjectIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.PlaylistService.GetUserPlaylists(c.Context(), ownerID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetPlaylistById lấy chi tiết playlist kèm chi tiết video
// @Router /playlists/:playlistId [get]
func (h *PlaylistHandler) HandleGetPlaylistById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := parseObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		detail, err := h.PlaylistService.GetPlaylistById(c.Context(), playlistID)
		h.HandleResponse(c, detail, err)
		return nil
	})
}

// HandleUpdatePlaylist sửa tên/mô tả playlist của chính người tạo
// @Router /playlists/:playlistId [patch]
func (h *PlaylistHandler) HandleUpdatePlaylist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := parseObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.PlaylistService.UpdatePlaylist(c.Context(), playlistID, ownerID, &input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleDeletePlaylist xóa playlist của chính người tạo
// @Router /playlists/:playlistId [delete]
func (h *PlaylistHandler) HandleDeletePlaylist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := parseObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.PlaylistService.DeletePlaylist(c.Context(), playlistID, ownerID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleAddVideo thêm video vào playlist
// @Router /playlists/:playlistId/videos/:videoId [post]
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.handleVideoMembership(c, h.PlaylistService.AddVideo)
}

// HandleRemoveVideo gỡ video khỏi playlist
// @Router /playlists/:playlistId/videos/:videoId [delete]
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.handleVideoMembership(c, h.PlaylistService.RemoveVideo)
}

// handleVideoMembership dùng chung cho thêm/gỡ video: đọc hai param và gọi thao tác tương ứng
func (h *PlaylistHandler) handleVideoMembership(c fiber.Ctx, op func(ctx context.Context, playlistID, ownerID, videoID primitive.ObjectID) (playlistmodels.Playlist, error)) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := parseObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := parseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := op(c.Context(), playlistID, ownerID, videoID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// parseObjectIDParam đọc và validate một param dạng ObjectID
func parseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	idHex := c.Params(name)
	if !primitive.IsValidObjectID(idHex) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", idHex),
			common.StatusBadRequest,
			nil,
		)
	}
	id, _ := primitive.ObjectIDFromHex(idHex)
	return id, nil
}
