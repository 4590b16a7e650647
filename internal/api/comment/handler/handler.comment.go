package commenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_tube/internal/api/base/handler"
	commentdto "meta_tube/internal/api/comment/dto"
	commentmodels "meta_tube/internal/api/comment/models"
	commentsvc "meta_tube/internal/api/comment/service"
	"meta_tube/internal/common"
)

// CommentHandler xử lý các request liên quan đến bình luận
type CommentHandler struct {
	*basehdl.BaseHandler[commentmodels.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput]
	CommentService *commentsvc.CommentService
}

// NewCommentHandler tạo mới CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	hdl := &CommentHandler{CommentService: commentService}
	hdl.BaseHandler = basehdl.NewBaseHandler[commentmodels.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput](commentService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleGetVideoComments liệt kê bình luận của một video (phân trang, mới nhất trước)
// @Router /comments/video/:videoId [get]
func (h *CommentHandler) HandleGetVideoComments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := parseIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.CommentService.GetVideoComments(c.Context(), videoID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAddComment tạo bình luận mới trên video
// @Router /comments/video/:videoId [post]
func (h *CommentHandler) HandleAddComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := parseIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commentdto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.CommentService.AddComment(c.Context(), videoID, ownerID, input.Content)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleUpdateComment sửa bình luận của chính người viết
// @Router /comments/:commentId [patch]
func (h *CommentHandler) HandleUpdateComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		commentID, err := parseIDParam(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commentdto.CommentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.CommentService.UpdateComment(c.Context(), commentID, ownerID, input.Content)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDeleteComment xóa bình luận của chính người viết
// @Router /comments/:commentId [delete]
func (h *CommentHandler) HandleDeleteComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		commentID, err := parseIDParam(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.CommentService.DeleteComment(c.Context(), commentID, ownerID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// parseIDParam đọc và validate một param dạng ObjectID
func parseIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
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
