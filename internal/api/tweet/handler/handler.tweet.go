package tweethdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_tube/internal/api/base/handler"
	tweetdto "meta_tube/internal/api/tweet/dto"
	tweetmodels "meta_tube/internal/api/tweet/models"
	tweetsvc "meta_tube/internal/api/tweet/service"
	"meta_tube/internal/common"
)

// TweetHandler xử lý các request liên quan đến bài đăng ngắn
type TweetHandler struct {
	*basehdl.BaseHandler[tweetmodels.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput]
	TweetService *tweetsvc.TweetService
}

// NewTweetHandler tạo mới TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet service: %v", err)
	}
	hdl := &TweetHandler{TweetService: tweetService}
	hdl.BaseHandler = basehdl.NewBaseHandler[tweetmodels.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput](tweetService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreateTweet tạo tweet mới trên kênh của user đang đăng nhập
// @Router /tweets [post]
func (h *TweetHandler) HandleCreateTweet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.TweetService.CreateTweet(c.Context(), ownerID, input.Content)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleGetUserTweets liệt kê tweet của một kênh (phân trang)
// @Router /tweets/user/:userId [get]
func (h *TweetHandler) HandleGetUserTweets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := parseTweetIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.TweetService.GetUserTweets(c.Context(), ownerID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdateTweet sửa tweet của chính kênh đăng
// @Router /tweets/:tweetId [patch]
func (h *TweetHandler) HandleUpdateTweet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := parseTweetIDParam(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.TweetService.UpdateTweet(c.Context(), tweetID, ownerID, input.Content)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleDeleteTweet xóa tweet của chính kênh đăng
// @Router /tweets/:tweetId [delete]
func (h *TweetHandler) HandleDeleteTweet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := parseTweetIDParam(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.TweetService.DeleteTweet(c.Context(), tweetID, ownerID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// parseTweetIDParam đọc và validate một param dạng ObjectID
func parseTweetIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
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
