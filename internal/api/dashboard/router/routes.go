package dashboardrouter

import (
	"github.com/gofiber/fiber/v3"

	dashboardhdl "meta_tube/internal/api/dashboard/handler"
	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký các route cho domain Dashboard. Toàn bộ route yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	prefix := "/dashboard"

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/stats", auth, handler.HandleGetChannelStats)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/videos", auth, handler.HandleGetChannelVideos)

	return nil
}
