// Package basesvc - Test các builder stage aggregation dùng chung ($lookup, $sort, search).
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// sortOf lấy field và order từ stage $sort trả về bởi SortStage
func sortOf(t *testing.T, stage bson.D) (string, int) {
	t.Helper()
	require.Len(t, stage, 1)
	require.Equal(t, "$sort", stage[0].Key)
	sortDoc, ok := stage[0].Value.(bson.D)
	require.True(t, ok, "giá trị $sort phải là bson.D")
	require.Len(t, sortDoc, 1)
	return sortDoc[0].Key, sortDoc[0].Value.(int)
}

func TestSortStage(t *testing.T) {
	allowed := map[string]bool{"createdAt": true, "views": true}

	t.Run("field trong whitelist, mặc định giảm dần", func(t *testing.T) {
		field, order := sortOf(t, SortStage("views", "", allowed, "createdAt"))
		assert.Equal(t, "views", field)
		assert.Equal(t, -1, order)
	})

	t.Run("sortType asc là tăng dần", func(t *testing.T) {
		field, order := sortOf(t, SortStage("views", "asc", allowed, "createdAt"))
		assert.Equal(t, "views", field)
		assert.Equal(t, 1, order)
	})

	t.Run("sortType 1 cũng là tăng dần", func(t *testing.T) {
		_, order := sortOf(t, SortStage("views", "1", allowed, "createdAt"))
		assert.Equal(t, 1, order)
	})

	t.Run("field ngoài whitelist rơi về default", func(t *testing.T) {
		field, order := sortOf(t, SortStage("password", "desc", allowed, "createdAt"))
		assert.Equal(t, "createdAt", field)
		assert.Equal(t, -1, order)
	})

	t.Run("sortBy rỗng dùng default", func(t *testing.T) {
		field, _ := sortOf(t, SortStage("", "", allowed, "createdAt"))
		assert.Equal(t, "createdAt", field)
	})
}

func TestSearchMatch(t *testing.T) {
	t.Run("query rỗng trả về nil", func(t *testing.T) {
		assert.Nil(t, SearchMatch("", "title"))
	})

	t.Run("không có field trả về nil", func(t *testing.T) {
		assert.Nil(t, SearchMatch("golang"))
	})

	t.Run("dựng $or regex không phân biệt hoa thường", func(t *testing.T) {
		match := SearchMatch("golang", "title", "description")
		require.NotNil(t, match)

		conds, ok := match["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, conds, 2)

		first, ok := conds[0].(bson.M)
		require.True(t, ok)
		titleCond, ok := first["title"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, "golang", titleCond["$regex"])
		assert.Equal(t, "i", titleCond["$options"])

		second, ok := conds[1].(bson.M)
		require.True(t, ok)
		_, hasDescription := second["description"]
		assert.True(t, hasDescription)
	})
}

func TestLookupSpecStages(t *testing.T) {
	t.Run("không unwind chỉ có $lookup", func(t *testing.T) {
		spec := LookupSpec{
			From:         "videos",
			LocalField:   "video",
			ForeignField: "_id",
			As:           "video",
		}
		stages := spec.Stages()
		require.Len(t, stages, 1)
		assert.Equal(t, "$lookup", stages[0][0].Key)

		lookup, ok := stages[0][0].Value.(bson.M)
		require.True(t, ok)
		assert.Equal(t, "videos", lookup["from"])
		assert.Equal(t, "video", lookup["localField"])
		assert.Equal(t, "_id", lookup["foreignField"])
		assert.Equal(t, "video", lookup["as"])
		_, hasPipeline := lookup["pipeline"]
		assert.False(t, hasPipeline, "không được thêm pipeline rỗng vào $lookup")
	})

	t.Run("unwind thêm $addFields collapse mảng thành object", func(t *testing.T) {
		spec := LookupSpec{
			From:         "users",
			LocalField:   "owner",
			ForeignField: "_id",
			As:           "owner",
			Unwind:       true,
		}
		stages := spec.Stages()
		require.Len(t, stages, 2)
		assert.Equal(t, "$lookup", stages[0][0].Key)
		assert.Equal(t, "$addFields", stages[1][0].Key)

		addFields, ok := stages[1][0].Value.(bson.M)
		require.True(t, ok)
		ownerExpr, ok := addFields["owner"].(bson.M)
		require.True(t, ok)
		ifNull, ok := ownerExpr["$ifNull"].(bson.A)
		require.True(t, ok)
		require.Len(t, ifNull, 2)
		firstExpr, ok := ifNull[0].(bson.M)
		require.True(t, ok)
		assert.Equal(t, "$owner", firstExpr["$first"])
		assert.Nil(t, ifNull[1])
	})

	t.Run("pipeline con được gắn vào $lookup", func(t *testing.T) {
		spec := LookupSpec{
			From:         "users",
			LocalField:   "owner",
			ForeignField: "_id",
			As:           "owner",
			Pipeline: mongo.Pipeline{
				bson.D{{Key: "$project", Value: bson.M{"username": 1}}},
			},
		}
		stages := spec.Stages()
		lookup := stages[0][0].Value.(bson.M)
		_, hasPipeline := lookup["pipeline"]
		assert.True(t, hasPipeline)
	})
}

func TestOwnerLookup(t *testing.T) {
	spec := OwnerLookup("users", "owner", "ownerDetails")

	assert.Equal(t, "users", spec.From)
	assert.Equal(t, "owner", spec.LocalField)
	assert.Equal(t, "_id", spec.ForeignField)
	assert.Equal(t, "ownerDetails", spec.As)
	assert.True(t, spec.Unwind)

	// Pipeline chỉ project các field công khai, không lộ password/refreshToken
	require.Len(t, spec.Pipeline, 1)
	require.Equal(t, "$project", spec.Pipeline[0][0].Key)
	project, ok := spec.Pipeline[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Contains(t, project, "fullName")
	assert.Contains(t, project, "username")
	assert.Contains(t, project, "avatar")
	assert.NotContains(t, project, "password")
	assert.NotContains(t, project, "refreshToken")
	assert.NotContains(t, project, "email")
}
