package commentrouter

import (
	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
	commenthdl "meta_tube/internal/api/comment/handler"
)

// Register đăng ký các route cho domain Comment. Toàn bộ route yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	prefix := "/comments"

	// CRUD chung cho quản trị
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadOnlyConfig, auth)

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/video/:videoId", auth, handler.HandleGetVideoComments)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/video/:videoId", auth, handler.HandleAddComment)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:commentId", auth, handler.HandleUpdateComment)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:commentId", auth, handler.HandleDeleteComment)

	return nil
}
