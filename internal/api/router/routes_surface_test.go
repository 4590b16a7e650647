// Test bề mặt route của toàn bộ API: các collection chứa dữ liệu riêng tư
// (users, videos, likes, subscriptions) không được mở route đọc CRUD chung.
package router_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	commentrouter "meta_tube/internal/api/comment/router"
	dashboardrouter "meta_tube/internal/api/dashboard/router"
	likerouter "meta_tube/internal/api/like/router"
	playlistrouter "meta_tube/internal/api/playlist/router"
	"meta_tube/internal/api/router"
	subscriptionrouter "meta_tube/internal/api/subscription/router"
	tweetrouter "meta_tube/internal/api/tweet/router"
	userrouter "meta_tube/internal/api/user/router"
	videorouter "meta_tube/internal/api/video/router"
	"meta_tube/internal/global"
)

// registerTestCollections đăng ký collection chưa kết nối cho mọi domain,
// đủ để dựng handler và đăng ký route mà không cần MongoDB thật
func registerTestCollections(t *testing.T) {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	require.NoError(t, err)

	db := client.Database("meta_tube_test")
	for _, name := range []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Videos,
		global.MongoDB_ColNames.Comments,
		global.MongoDB_ColNames.Likes,
		global.MongoDB_ColNames.Subscriptions,
		global.MongoDB_ColNames.Playlists,
		global.MongoDB_ColNames.Tweets,
	} {
		_, err := global.RegistryCollections.Register(name, db.Collection(name))
		require.NoError(t, err)
	}
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	registerTestCollections(t)

	app := fiber.New()
	require.NoError(t, router.SetupRoutes(app,
		userrouter.Register,
		videorouter.Register,
		commentrouter.Register,
		likerouter.Register,
		subscriptionrouter.Register,
		playlistrouter.Register,
		tweetrouter.Register,
		dashboardrouter.Register,
	))
	return app
}

func TestRouteSurface(t *testing.T) {
	app := setupTestApp(t)

	registered := map[string]bool{}
	var paths []string
	for _, route := range app.GetRoutes(true) {
		registered[route.Method+" "+route.Path] = true
		paths = append(paths, route.Path)
	}

	t.Run("route nghiệp vụ có mặt", func(t *testing.T) {
		for _, want := range []string{
			"POST /api/v1/auth/register",
			"POST /api/v1/auth/login",
			"GET /api/v1/users/current",
			"GET /api/v1/users/watch-history",
			"GET /api/v1/likes/videos",
			"GET /api/v1/subscriptions/subscribed",
			"GET /api/v1/dashboard/stats",
		} {
			assert.True(t, registered[want], "thiếu route %s", want)
		}
	})

	t.Run("nội dung công khai vẫn có route đọc chung", func(t *testing.T) {
		for _, want := range []string{
			"GET /api/v1/comments/find",
			"GET /api/v1/tweets/find",
			"GET /api/v1/playlists/find",
		} {
			assert.True(t, registered[want], "thiếu route %s", want)
		}
	})

	t.Run("dữ liệu riêng tư không có route đọc chung", func(t *testing.T) {
		for _, domain := range []string{"users", "videos", "likes", "subscriptions"} {
			base := "/api/v1/" + domain
			for _, path := range paths {
				assert.False(t, strings.HasPrefix(path, base+"/find"), "route %s lộ truy vấn tự do trên %s", path, domain)
				assert.NotEqual(t, base+"/count", path)
				assert.NotEqual(t, base+"/exists", path)
				assert.False(t, strings.HasPrefix(path, base+"/distinct"), "route %s lộ distinct trên %s", path, domain)
			}
		}
	})
}
