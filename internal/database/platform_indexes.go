// Package database - Index bổ sung (partial unique) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePlatformAdditionalIndexes tạo các index bổ sung cho nền tảng video.
// Các unique index partial trên likes biến race của toggle thành lỗi duplicate
// thay vì hai document trùng nhau. Gọi sau CreateIndexes cho từng collection.
func CreatePlatformAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// likes: (video, likedBy) unique partial — mỗi user chỉ like một video một lần
	likes := db.Collection(global.MongoDB_ColNames.Likes)
	if _, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "video", Value: 1},
			{Key: "likedBy", Value: 1},
		},
		Options: options.Index().SetName("like_video_user_unique").SetUnique(true).
			SetPartialFilterExpression(bson.M{"video": bson.M{"$exists": true}}),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// likes: (comment, likedBy) unique partial
	if _, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "comment", Value: 1},
			{Key: "likedBy", Value: 1},
		},
		Options: options.Index().SetName("like_comment_user_unique").SetUnique(true).
			SetPartialFilterExpression(bson.M{"comment": bson.M{"$exists": true}}),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// likes: (tweet, likedBy) unique partial
	if _, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tweet", Value: 1},
			{Key: "likedBy", Value: 1},
		},
		Options: options.Index().SetName("like_tweet_user_unique").SetUnique(true).
			SetPartialFilterExpression(bson.M{"tweet": bson.M{"$exists": true}}),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// subscriptions: (subscriber, channel) unique — mỗi user theo dõi một kênh một lần
	subscriptions := db.Collection(global.MongoDB_ColNames.Subscriptions)
	if _, err := subscriptions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subscriber", Value: 1},
			{Key: "channel", Value: 1},
		},
		Options: options.Index().SetName("subscription_subscriber_channel_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// videos: (owner, createdAt) — dashboard và listing theo kênh
	videos := db.Collection(global.MongoDB_ColNames.Videos)
	if _, err := videos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("video_owner_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// comments: (video, createdAt) — listing bình luận theo video
	comments := db.Collection(global.MongoDB_ColNames.Comments)
	if _, err := comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "video", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("comment_video_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
