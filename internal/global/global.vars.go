package global

import (
	"meta_tube/config"
	"meta_tube/internal/registry"
	"meta_tube/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng / kênh
	Videos        string // Tên collection cho video
	Comments      string // Tên collection cho bình luận
	Likes         string // Tên collection cho lượt thích (video/comment/tweet)
	Subscriptions string // Tên collection cho lượt theo dõi kênh
	Playlists     string // Tên collection cho playlist
	Tweets        string // Tên collection cho tweet
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:         "users",
	Videos:        "videos",
	Comments:      "comments",
	Likes:         "likes",
	Subscriptions: "subscriptions",
	Playlists:     "playlists",
	Tweets:        "tweets",
}

// StorageClient là client dịch vụ lưu trữ media, khởi tạo khi server start
var StorageClient *storage.Client

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
