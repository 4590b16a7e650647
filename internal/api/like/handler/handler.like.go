package likehdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_tube/internal/api/base/handler"
	likedto "meta_tube/internal/api/like/dto"
	likemodels "meta_tube/internal/api/like/models"
	likesvc "meta_tube/internal/api/like/service"
	"meta_tube/internal/common"
)

// LikeHandler xử lý các request liên quan đến lượt thích
type LikeHandler struct {
	*basehdl.BaseHandler[likemodels.Like, likedto.LikeCreateInput, likedto.LikeUpdateInput]
	LikeService *likesvc.LikeService
}

// NewLikeHandler tạo mới LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := likesvc.NewLikeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %v", err)
	}
	hdl := &LikeHandler{LikeService: likeService}
	hdl.BaseHandler = basehdl.NewBaseHandler[likemodels.Like, likedto.LikeCreateInput, likedto.LikeUpdateInput](likeService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleToggleVideoLike đảo trạng thái thích trên video
// @Router /likes/toggle/video/:videoId [post]
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	return h.handleToggle(c, "videoId", h.LikeService.ToggleVideoLike)
}

// HandleToggleCommentLike đảo trạng thái thích trên comment
// @Router /likes/toggle/comment/:commentId [post]
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	return h.handleToggle(c, "commentId", h.LikeService.ToggleCommentLike)
}

// HandleToggleTweetLike đảo trạng thái thích trên tweet
// @Router /likes/toggle/tweet/:tweetId [post]
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	return h.handleToggle(c, "tweetId", h.LikeService.ToggleTweetLike)
}

// handleToggle dùng chung cho ba loại toggle: đọc param, lấy user và gọi toggle tương ứng
func (h *LikeHandler) handleToggle(c fiber.Ctx, paramName string, toggle func(ctx context.Context, targetID, likedBy primitive.ObjectID) (likemodels.ToggleResult, error)) error {
	return h.SafeHandler(c, func() error {
		likedBy, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		idHex := c.Params(paramName)
		if !primitive.IsValidObjectID(idHex) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", idHex),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		targetID, _ := primitive.ObjectIDFromHex(idHex)

		result, err := toggle(c.Context(), targetID, likedBy)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetLikedVideos liệt kê các video user đã thích (phân trang)
// @Router /likes/videos [get]
func (h *LikeHandler) HandleGetLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		likedBy, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.LikeService.GetLikedVideos(c.Context(), likedBy, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}
