package subscriptionrouter

import (
	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
	subscriptionhdl "meta_tube/internal/api/subscription/handler"
)

// Register đăng ký các route cho domain Subscription. Toàn bộ route yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := subscriptionhdl.NewSubscriptionHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	prefix := "/subscriptions"

	// Không mở CRUD đọc chung cho subscriptions: danh sách theo dõi
	// là dữ liệu riêng của từng user, chỉ trả qua các route nghiệp vụ

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/toggle/:channelId", auth, handler.HandleToggleSubscription)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/channel/:channelId", auth, handler.HandleGetChannelSubscribers)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/subscribed", auth, handler.HandleGetSubscribedChannels)

	return nil
}
