// Package usersvc - Test pipeline lịch sử xem: thứ tự video phải theo đúng mảng watchHistory.
package usersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWatchHistoryPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := watchHistoryPipeline(userID)
	require.Len(t, pipeline, 6)

	assert.Equal(t, bson.M{"_id": userID}, pipeline[0][0].Value, "phải giới hạn theo user")

	// Tách phần tử kèm chỉ số trước khi lookup: $lookup theo mảng không giữ thứ tự
	unwind, ok := pipeline[1][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "$watchHistory", unwind["path"])
	assert.Equal(t, "historyIndex", unwind["includeArrayIndex"])

	lookup, ok := pipeline[2][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "videos", lookup["from"])
	assert.Equal(t, "watchHistory", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])

	// Sắp lại theo chỉ số gốc rồi mới thay root bằng video
	assert.Equal(t, "$sort", pipeline[4][0].Key)
	sort, ok := pipeline[4][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "historyIndex", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)

	assert.Equal(t, "$replaceRoot", pipeline[5][0].Key)
}
