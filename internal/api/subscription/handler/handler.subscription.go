package subscriptionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_tube/internal/api/base/handler"
	subscriptiondto "meta_tube/internal/api/subscription/dto"
	subscriptionmodels "meta_tube/internal/api/subscription/models"
	subscriptionsvc "meta_tube/internal/api/subscription/service"
	"meta_tube/internal/common"
)

// SubscriptionHandler xử lý các request liên quan đến theo dõi kênh
type SubscriptionHandler struct {
	*basehdl.BaseHandler[subscriptionmodels.Subscription, subscriptiondto.SubscriptionCreateInput, subscriptiondto.SubscriptionUpdateInput]
	SubscriptionService *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := subscriptionsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	hdl := &SubscriptionHandler{SubscriptionService: subscriptionService}
	hdl.BaseHandler = basehdl.NewBaseHandler[subscriptionmodels.Subscription, subscriptiondto.SubscriptionCreateInput, subscriptiondto.SubscriptionUpdateInput](subscriptionService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleToggleSubscription đảo trạng thái theo dõi kênh của user đang đăng nhập
// @Router /subscriptions/toggle/:channelId [post]
func (h *SubscriptionHandler) HandleToggleSubscription(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		channelID, err := parseChannelIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.SubscriptionService.ToggleSubscription(c.Context(), subscriberID, channelID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetChannelSubscribers liệt kê những người theo dõi một kênh (phân trang)
// @Router /subscriptions/channel/:channelId [get]
func (h *SubscriptionHandler) HandleGetChannelSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := parseChannelIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.SubscriptionService.GetChannelSubscribers(c.Context(), channelID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetSubscribedChannels liệt kê các kênh user đang đăng nhập theo dõi (phân trang)
// @Router /subscriptions/subscribed [get]
func (h *SubscriptionHandler) HandleGetSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.SubscriptionService.GetSubscribedChannels(c.Context(), subscriberID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// parseChannelIDParam đọc và validate một param dạng ObjectID
func parseChannelIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
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
