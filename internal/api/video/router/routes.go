package videorouter

import (
	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
	videohdl "meta_tube/internal/api/video/handler"
)

// Register đăng ký các route cho domain Video. Toàn bộ route yêu cầu đăng nhập.
//
// Lưu ý thứ tự: các route có path cố định (CRUD, toggle-publish) phải đăng ký
// TRƯỚC route param "/:videoId" để không bị param route nuốt mất.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := videohdl.NewVideoHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	prefix := "/videos"

	// Không mở CRUD đọc chung cho videos: video chưa công khai
	// chỉ chủ kênh xem được, truy vấn tự do sẽ lộ chúng

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/", auth, handler.HandleGetAllVideos)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", auth, handler.HandlePublishVideo)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/toggle-publish/:videoId", auth, handler.HandleTogglePublish)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/:videoId", auth, handler.HandleGetVideoById)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:videoId", auth, handler.HandleUpdateVideo)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:videoId", auth, handler.HandleDeleteVideo)

	return nil
}
