// Package playlistsvc - Test filter thêm/gỡ video: điều kiện thành viên
// phải nằm trong filter để phát hiện video đã có / chưa có trong playlist.
package playlistsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddVideoFilter(t *testing.T) {
	playlistID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	filter := addVideoFilter(playlistID, ownerID, videoID)

	assert.Equal(t, playlistID, filter["_id"], "phải giới hạn theo playlist")
	assert.Equal(t, ownerID, filter["owner"], "phải giới hạn theo chủ playlist")
	// Video đã nằm sẵn trong mảng thì update không được khớp,
	// matched = 0 mới phân biệt được với trường hợp thêm thành công
	assert.Equal(t, bson.M{"$ne": videoID}, filter["videos"])
}

func TestRemoveVideoFilter(t *testing.T) {
	playlistID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	filter := removeVideoFilter(playlistID, ownerID, videoID)

	assert.Equal(t, playlistID, filter["_id"])
	assert.Equal(t, ownerID, filter["owner"])
	// Chỉ khớp khi video đang có trong mảng, gỡ video vắng mặt phải trả matched = 0
	assert.Equal(t, videoID, filter["videos"])
}
