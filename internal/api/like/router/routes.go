package likerouter

import (
	"github.com/gofiber/fiber/v3"

	likehdl "meta_tube/internal/api/like/handler"
	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký các route cho domain Like. Toàn bộ route yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := likehdl.NewLikeHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	prefix := "/likes"

	// Không mở CRUD đọc chung cho likes: lượt thích là dữ liệu riêng
	// của từng user, chỉ trả qua các route nghiệp vụ

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/toggle/video/:videoId", auth, handler.HandleToggleVideoLike)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/toggle/comment/:commentId", auth, handler.HandleToggleCommentLike)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/toggle/tweet/:tweetId", auth, handler.HandleToggleTweetLike)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/videos", auth, handler.HandleGetLikedVideos)

	return nil
}
