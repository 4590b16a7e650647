package userrouter

import (
	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
	userhdl "meta_tube/internal/api/user/handler"
)

// Register đăng ký các route cho domain User (tài khoản, xác thực, kênh).
//
// Route công khai nằm dưới /auth (register, login, refresh-token).
// Toàn bộ /users yêu cầu đăng nhập: middleware .Use() áp dụng theo prefix
// nên không trộn route công khai và route bảo vệ chung một prefix được.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := userhdl.NewUserHandler()
	if err != nil {
		return err
	}

	authMiddleware := middleware.AuthMiddleware()
	noAuth := []fiber.Handler{}
	auth := []fiber.Handler{authMiddleware}

	// ===== AUTH (công khai) =====
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/register", noAuth, handler.HandleRegister)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", noAuth, handler.HandleLogin)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/refresh-token", noAuth, handler.HandleRefreshToken)

	prefix := "/users"

	// ===== ACCOUNT =====
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/logout", auth, handler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/change-password", auth, handler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/current", auth, handler.HandleGetCurrentUser)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/update-account", auth, handler.HandleUpdateAccount)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/avatar", auth, handler.HandleUpdateAvatar)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/cover-image", auth, handler.HandleUpdateCoverImage)

	// ===== CHANNEL =====
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/channel/:username", auth, handler.HandleGetChannelProfile)

	// ===== WATCH HISTORY =====
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/watch-history", auth, handler.HandleGetWatchHistory)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/watch-history/:videoId", auth, handler.HandleAddWatchHistory)

	// Không mở CRUD đọc chung cho users: document chứa hash mật khẩu
	// và refresh token, chỉ expose qua các route nghiệp vụ phía trên

	return nil
}
