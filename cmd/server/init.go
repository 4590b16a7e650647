package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"meta_tube/config"
	commentmodels "meta_tube/internal/api/comment/models"
	likemodels "meta_tube/internal/api/like/models"
	playlistmodels "meta_tube/internal/api/playlist/models"
	subscriptionmodels "meta_tube/internal/api/subscription/models"
	tweetmodels "meta_tube/internal/api/tweet/models"
	usermodels "meta_tube/internal/api/user/models"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/database"
	"meta_tube/internal/global"
	"meta_tube/internal/storage"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initStorage()          // Khởi tạo client dịch vụ lưu trữ media
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, username, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), usermodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), videomodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Likes), likemodels.Like{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Subscriptions), subscriptionmodels.Subscription{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Playlists), playlistmodels.Playlist{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tweets), tweetmodels.Tweet{})

	// Index bổ sung (partial unique cho likes, unique cho subscriptions, compound phục vụ listing)
	if err := database.CreatePlatformAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
}

// Hàm khởi tạo client dịch vụ lưu trữ media
func initStorage() {
	cfg := global.MongoDB_ServerConfig
	timeout := time.Duration(cfg.StorageTimeout) * time.Second
	global.StorageClient = storage.NewClient(cfg.StorageBaseURL, cfg.StorageAPIKey, cfg.StorageAPISecret, timeout, nil)
	logrus.Info("Initialized storage client")
}
