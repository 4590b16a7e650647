package playlistrouter

import (
	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	playlisthdl "meta_tube/internal/api/playlist/handler"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký các route cho domain Playlist. Toàn bộ route yêu cầu đăng nhập.
//
// Lưu ý thứ tự: các route có path cố định (CRUD, /user/...) phải đăng ký
// TRƯỚC route param "/:playlistId" để không bị param route nuốt mất.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	prefix := "/playlists"

	// CRUD chung cho quản trị
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadOnlyConfig, auth)

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", auth, handler.HandleCreatePlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/user/:userId", auth, handler.HandleGetUserPlaylists)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:playlistId/videos/:videoId", auth, handler.HandleAddVideo)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:playlistId/videos/:videoId", auth, handler.HandleRemoveVideo)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/:playlistId", auth, handler.HandleGetPlaylistById)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:playlistId", auth, handler.HandleUpdatePlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:playlistId", auth, handler.HandleDeletePlaylist)

	return nil
}
