package tweetrouter

import (
	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
	tweethdl "meta_tube/internal/api/tweet/handler"
)

// Register đăng ký các route cho domain Tweet. Toàn bộ route yêu cầu đăng nhập.
//
// Lưu ý thứ tự: route "/user/:userId" phải đăng ký TRƯỚC "/:tweetId".
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := tweethdl.NewTweetHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	prefix := "/tweets"

	// CRUD chung cho quản trị
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadOnlyConfig, auth)

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", auth, handler.HandleCreateTweet)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/user/:userId", auth, handler.HandleGetUserTweets)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:tweetId", auth, handler.HandleUpdateTweet)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:tweetId", auth, handler.HandleDeleteTweet)

	return nil
}
