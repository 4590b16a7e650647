// Package basesvc - Test chuyển đổi dữ liệu update đa dạng (struct, map, operator map) về UpdateData.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_Passthrough(t *testing.T) {
	t.Run("pointer trả về đúng pointer", func(t *testing.T) {
		update := &UpdateData{Set: map[string]interface{}{"title": "abc"}}
		got, err := ToUpdateData(update)
		require.NoError(t, err)
		assert.Same(t, update, got)
	})

	t.Run("value được chuyển thành pointer", func(t *testing.T) {
		update := UpdateData{Inc: map[string]interface{}{"views": 1}}
		got, err := ToUpdateData(update)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, update.Inc, got.Inc)
	})
}

func TestToUpdateData_OperatorMap(t *testing.T) {
	data := map[string]interface{}{
		"$set":   map[string]interface{}{"title": "video mới"},
		"$unset": map[string]interface{}{"thumbnail": ""},
		"$inc":   map[string]interface{}{"views": 1},
	}

	got, err := ToUpdateData(data)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "video mới", got.Set["title"])
	assert.Contains(t, got.Unset, "thumbnail")
	require.Contains(t, got.Inc, "views")
	// BSON round-trip đưa số nguyên nhỏ về int32
	assert.EqualValues(t, 1, got.Inc["views"])

	assert.Nil(t, got.Push)
	assert.Nil(t, got.Pull)
	assert.Nil(t, got.AddToSet)
}

func TestToUpdateData_ArrayOperators(t *testing.T) {
	videoID := "65f000000000000000000001"
	data := map[string]interface{}{
		"$addToSet": map[string]interface{}{"videos": videoID},
		"$pull":     map[string]interface{}{"videos": videoID},
	}

	got, err := ToUpdateData(data)
	require.NoError(t, err)

	assert.Equal(t, videoID, got.AddToSet["videos"])
	assert.Equal(t, videoID, got.Pull["videos"])
	assert.Nil(t, got.Set, "không được wrap operator map vào $set")
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	data := map[string]interface{}{
		"title":       "video mới",
		"description": "mô tả",
	}

	got, err := ToUpdateData(data)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "video mới", got.Set["title"])
	assert.Equal(t, "mô tả", got.Set["description"])
	assert.Nil(t, got.Unset)
	assert.Nil(t, got.Inc)
}

func TestToUpdateData_Struct(t *testing.T) {
	input := struct {
		Title string `bson:"title"`
	}{Title: "từ struct"}

	got, err := ToUpdateData(input)
	require.NoError(t, err)
	assert.Equal(t, "từ struct", got.Set["title"])
}

func TestToUpdateData_RawBSON(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"$set": bson.M{"name": "x"}})
	require.NoError(t, err)

	got, err := ToUpdateData(raw)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Set["name"])
}
