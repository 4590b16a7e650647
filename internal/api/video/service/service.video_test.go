// Package videosvc - Test filter quyền sở hữu video dùng cho các thao tác ghi.
package videosvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOwnedVideoFilter(t *testing.T) {
	videoID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	filter := ownedVideoFilter(videoID, ownerID)

	// Chủ kênh phải nằm ngay trong filter ghi, không chỉ ở lần đọc kiểm tra trước đó
	assert.Equal(t, bson.M{"_id": videoID, "owner": ownerID}, filter)
}

func TestAllowedSortFields(t *testing.T) {
	for _, field := range []string{"createdAt", "views", "title", "duration"} {
		assert.True(t, allowedSortFields[field], "thiếu trường sắp xếp %s", field)
	}
	assert.False(t, allowedSortFields["owner"], "không được sắp xếp theo trường ngoài whitelist")
}
